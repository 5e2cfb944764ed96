package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/avelar/pixelmint/internal/cache"
	"github.com/avelar/pixelmint/internal/config"
	"github.com/avelar/pixelmint/internal/ent/enttest"
	"github.com/avelar/pixelmint/internal/service"
	"github.com/avelar/pixelmint/internal/worker"

	_ "github.com/mattn/go-sqlite3"
)

func newTestRouter(t *testing.T) (http.Handler, *worker.MockDispatcher) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:ent_router?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	points := service.NewPointsService(client, logger)
	sessions := service.NewSessionService(client, logger)
	dispatcher := worker.NewMock()
	generations := service.NewGenerationService(client, points, dispatcher, logger)

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		BaseURL:     "http://localhost:8080",
		FrontendURL: "http://localhost:3000",
	}
	svcs := &Services{
		Points:      points,
		Sessions:    sessions,
		Generations: generations,
		Cache:       cache.NewMemory(),
	}
	return NewRouter(cfg, svcs, logger), dispatcher
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRouter_AnonymousGenerationFlow(t *testing.T) {
	router, dispatcher := newTestRouter(t)

	// Fresh session starts broke: submission is denied with the balance.
	body := bytes.NewBufferString(`{"prompt":"a lighthouse at dusk"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/generations", body)
	req.Header.Set("X-Real-IP", "203.0.113.5")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("broke submit status = %d, want 403 (body %s)", rec.Code, rec.Body)
	}
	var denied struct {
		PointsBalance int `json:"pointsBalance"`
		Required      int `json:"required"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &denied); err != nil {
		t.Fatalf("decode denial: %v", err)
	}
	if denied.PointsBalance != 0 || denied.Required != service.GenerationCost {
		t.Errorf("denial = %+v", denied)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie minted")
	}

	// Checking the balance claims the daily bonus.
	req = httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("X-Real-IP", "203.0.113.5")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("points status = %d (body %s)", rec.Code, rec.Body)
	}
	var balance struct {
		Balance      int  `json:"balance"`
		BonusGranted bool `json:"bonusGranted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &balance); err != nil {
		t.Fatalf("decode balance: %v", err)
	}
	if !balance.BonusGranted || balance.Balance != service.DailyBonusPoints {
		t.Errorf("balance = %+v, want granted bonus", balance)
	}

	// Funded now: submission succeeds and charges one point.
	body = bytes.NewBufferString(`{"prompt":"a lighthouse at dusk","batchSize":4}`)
	req = httptest.NewRequest(http.MethodPost, "/api/generations", body)
	req.Header.Set("X-Real-IP", "203.0.113.5")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("funded submit status = %d (body %s)", rec.Code, rec.Body)
	}
	var result struct {
		GenerationID    int    `json:"generationId"`
		JobID           string `json:"jobId"`
		PointsRemaining int    `json:"pointsRemaining"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.JobID == "" || result.PointsRemaining != service.DailyBonusPoints-service.GenerationCost {
		t.Errorf("result = %+v", result)
	}

	jobs := dispatcher.Submitted()
	if len(jobs) != 1 || jobs[0].Settings.BatchSize != 4 {
		t.Errorf("dispatched jobs = %+v, want one with batch size 4", jobs)
	}

	// Worker settles the job; status turns terminal.
	callback := bytes.NewBufferString(`{"id":"` + result.JobID + `","status":"COMPLETED","output":{"message":"https://cdn.example.com/1.png"}}`)
	req = httptest.NewRequest(http.MethodPost, "/api/worker/callback", callback)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("callback status = %d (body %s)", rec.Code, rec.Body)
	}
}

func TestRouter_CheckoutRequiresBilling(t *testing.T) {
	router, _ := newTestRouter(t)

	// Billing is nil in this router; the route is not mounted.
	req := httptest.NewRequest(http.MethodPost, "/billing/checkout", bytes.NewBufferString(`{}`))
	req.Header.Set("X-Real-IP", "203.0.113.6")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		t.Errorf("status = %d, want non-200 with billing disabled", rec.Code)
	}
}
