package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/avelar/pixelmint/internal/api/response"
	"github.com/avelar/pixelmint/internal/cache"
	"github.com/avelar/pixelmint/internal/identity"
	"github.com/avelar/pixelmint/internal/service"
)

// IdentityHandler receives identity-provider lifecycle webhooks.
type IdentityHandler struct {
	sessions      *service.SessionService
	cache         cache.Store
	webhookSecret string
	logger        *slog.Logger
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(sessions *service.SessionService, store cache.Store, webhookSecret string, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		sessions:      sessions,
		cache:         store,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// Webhook handles POST /identity/webhook. User lifecycle events promote the
// signup's anonymous session into the new user's ledger. Promotion is
// idempotent on the ledger row, so redelivered or repeated lifecycle events
// cannot double-grant.
func (h *IdentityHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 65536))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	event, err := identity.VerifyWebhook(payload, identity.WebhookHeaders{
		ID:        r.Header.Get("webhook-id"),
		Timestamp: r.Header.Get("webhook-timestamp"),
		Signature: r.Header.Get("webhook-signature"),
	}, h.webhookSecret)
	if err != nil {
		h.logger.Warn("identity webhook rejected", "error", err)
		response.Error(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	switch event.Type {
	case "user.created", "user.updated":
		eventID := r.Header.Get("webhook-id")
		if eventID != "" {
			duplicate, derr := h.sessions.MarkWebhookProcessed(r.Context(), "identity", eventID, event.Type)
			if derr != nil {
				response.Error(w, http.StatusInternalServerError, "event log failed")
				return
			}
			if duplicate {
				response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
				return
			}
		}

		token := event.Data.PublicMetadata.SessionToken
		ledger, err := h.sessions.Promote(r.Context(), event.Data.ID, token)
		if err != nil {
			h.logger.Error("session promotion failed", "user_id", event.Data.ID, "error", err)
			// Keep the delivery retryable: without the ledger the user has
			// no balance, so the record must not absorb the redelivery.
			if eventID != "" {
				if ferr := h.sessions.ForgetWebhookEvent(r.Context(), "identity", eventID); ferr != nil {
					h.logger.Error("release event record", "event_id", eventID, "error", ferr)
				}
			}
			response.Error(w, http.StatusInternalServerError, "promotion failed")
			return
		}
		if token != "" {
			if cerr := h.cache.InvalidateSession(r.Context(), token); cerr != nil {
				h.logger.Warn("session cache invalidation failed", "error", cerr)
			}
		}
		h.logger.Info("user promoted",
			"user_id", event.Data.ID, "starting_balance", ledger.PointsRemaining)
	default:
		h.logger.Info("unhandled identity event", "event_type", event.Type)
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
