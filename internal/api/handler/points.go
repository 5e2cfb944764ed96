package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/avelar/pixelmint/internal/api/middleware"
	"github.com/avelar/pixelmint/internal/api/response"
	"github.com/avelar/pixelmint/internal/service"
)

// PointsHandler handles balance reads and the live balance stream.
type PointsHandler struct {
	points   *service.PointsService
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewPointsHandler creates a new PointsHandler.
func NewPointsHandler(points *service.PointsService, logger *slog.Logger) *PointsHandler {
	return &PointsHandler{
		points: points,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Get handles GET /api/points. Reading the balance opportunistically claims
// the daily bonus, so simply visiting keeps an account topped up.
func (h *PointsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "no identity")
		return
	}

	info, err := h.points.Balance(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to read balance")
		return
	}
	if info.ShouldReauthenticate {
		response.JSON(w, http.StatusOK, map[string]any{
			"balance":      info.Balance,
			"bonusGranted": false,
			"shouldLogin":  true,
		})
		return
	}

	granted, balance, err := h.points.ClaimDailyBonus(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to read balance")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"balance":      balance,
		"bonusGranted": granted,
		"shouldLogin":  false,
	})
}

type balanceUpdate struct {
	Balance     int  `json:"balance"`
	ShouldLogin bool `json:"shouldLogin"`
}

// Stream handles GET /api/points/stream: a websocket that pushes the balance
// whenever it changes.
func (h *PointsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "no identity")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Drain client frames so pings and close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	last := -1
	for {
		info, err := h.points.Balance(r.Context(), id)
		if err != nil {
			h.logger.Warn("balance stream read failed", "error", err)
			return
		}
		if info.Balance != last {
			last = info.Balance
			update := balanceUpdate{Balance: info.Balance, ShouldLogin: info.ShouldReauthenticate}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
