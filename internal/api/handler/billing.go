package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/avelar/pixelmint/internal/api/middleware"
	"github.com/avelar/pixelmint/internal/api/response"
	"github.com/avelar/pixelmint/internal/service"
)

// BillingHandler handles checkout, portal, and the billing provider webhook.
type BillingHandler struct {
	billing *service.BillingService
	logger  *slog.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(billing *service.BillingService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{billing: billing, logger: logger}
}

// CreateCheckout handles POST /billing/checkout.
func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok || !id.IsUser() {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	url, err := h.billing.CreateCheckoutSession(r.Context(), id.UserID, req)
	if err != nil {
		h.logger.Error("create checkout session", "user_id", id.UserID, "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"url": url})
}

// Portal handles GET /billing/portal.
func (h *BillingHandler) Portal(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok || !id.IsUser() {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	url, err := h.billing.GetBillingPortalURL(r.Context(), id.UserID)
	if err != nil {
		h.logger.Error("create portal session", "user_id", id.UserID, "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to create portal session")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"url": url})
}

// Packs handles GET /billing/packs.
func (h *BillingHandler) Packs(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{"packs": service.PointsPacks})
}

// Webhook handles POST /billing/webhook.
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 65536))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if err := h.billing.HandleWebhookEvent(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		h.logger.Error("billing webhook", "error", err)
		// Non-2xx makes the provider redeliver; the idempotency log absorbs
		// the retries that already succeeded.
		response.Error(w, http.StatusBadRequest, "webhook processing failed")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
