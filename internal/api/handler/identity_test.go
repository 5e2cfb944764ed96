package handler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/avelar/pixelmint/internal/cache"
	"github.com/avelar/pixelmint/internal/ent"
	"github.com/avelar/pixelmint/internal/ent/enttest"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"
	"github.com/avelar/pixelmint/internal/identity"
	"github.com/avelar/pixelmint/internal/service"

	_ "github.com/mattn/go-sqlite3"
)

const testWebhookSecret = "whsec_dGVzdC1zaWduaW5nLWtleS0xMjM0NTY3OA=="

func newTestIdentityHandler(t *testing.T, name string) (*IdentityHandler, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+name+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sessions := service.NewSessionService(client, logger)
	return NewIdentityHandler(sessions, cache.NewMemory(), testWebhookSecret, logger), client
}

func signedWebhookRequest(t *testing.T, payload []byte, eventID string) *http.Request {
	t.Helper()
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	sig, err := identity.SignWebhook(payload, eventID, timestamp, testWebhookSecret)
	if err != nil {
		t.Fatalf("sign webhook: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/identity/webhook", bytes.NewReader(payload))
	req.Header.Set("webhook-id", eventID)
	req.Header.Set("webhook-timestamp", timestamp)
	req.Header.Set("webhook-signature", sig)
	return req
}

func TestIdentityWebhook_PromotesSession(t *testing.T) {
	h, client := newTestIdentityHandler(t, "ent_idh_promote")
	ctx := context.Background()

	sess, err := client.AnonymousSession.Create().
		SetToken("sess-token-1").
		SetIPAddress("203.0.113.7").
		SetPointsRemaining(6).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	payload := []byte(`{"type":"user.created","data":{"id":"user_1","public_metadata":{"session_id":"sess-token-1"}}}`)
	rec := httptest.NewRecorder()
	h.Webhook(rec, signedWebhookRequest(t, payload, "msg_1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body)
	}

	l := client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	if l.PointsRemaining != service.SignupBasePoints+6 {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, service.SignupBasePoints+6)
	}

	got := client.AnonymousSession.GetX(ctx, sess.ID)
	if got.Status != "converted" {
		t.Errorf("session status = %q, want converted", got.Status)
	}

	// Redelivery with the same event id is absorbed by the idempotency log.
	rec = httptest.NewRecorder()
	h.Webhook(rec, signedWebhookRequest(t, payload, "msg_1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("redelivery status = %d", rec.Code)
	}
	l = client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	if l.PointsRemaining != service.SignupBasePoints+6 {
		t.Errorf("balance after redelivery = %d, want unchanged", l.PointsRemaining)
	}
}

func TestIdentityWebhook_FailedPromotionStaysRetryable(t *testing.T) {
	h, client := newTestIdentityHandler(t, "ent_idh_retry")
	ctx := context.Background()

	// A broken first delivery fails promotion after the event id is logged.
	bad := []byte(`{"type":"user.created","data":{"id":"","public_metadata":{}}}`)
	rec := httptest.NewRecorder()
	h.Webhook(rec, signedWebhookRequest(t, bad, "msg_retry"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("failed delivery status = %d, want 500", rec.Code)
	}

	// The provider redelivers under the same event id; the failed attempt
	// must not have pinned the idempotency record, or the user never gets
	// a ledger.
	good := []byte(`{"type":"user.created","data":{"id":"user_1","public_metadata":{}}}`)
	rec = httptest.NewRecorder()
	h.Webhook(rec, signedWebhookRequest(t, good, "msg_retry"))
	if rec.Code != http.StatusOK {
		t.Fatalf("retry status = %d (body %s)", rec.Code, rec.Body)
	}

	l := client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	if l.PointsRemaining != service.SignupBasePoints {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, service.SignupBasePoints)
	}
}

func TestIdentityWebhook_RejectsBadSignature(t *testing.T) {
	h, client := newTestIdentityHandler(t, "ent_idh_badsig")

	payload := []byte(`{"type":"user.created","data":{"id":"user_1","public_metadata":{}}}`)
	req := httptest.NewRequest(http.MethodPost, "/identity/webhook", bytes.NewReader(payload))
	req.Header.Set("webhook-id", "msg_1")
	req.Header.Set("webhook-timestamp", fmt.Sprintf("%d", time.Now().Unix()))
	req.Header.Set("webhook-signature", "v1,bm90LWEtcmVhbC1zaWduYXR1cmU=")

	rec := httptest.NewRecorder()
	h.Webhook(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if n := client.UserLedger.Query().CountX(context.Background()); n != 0 {
		t.Errorf("ledger rows = %d, want 0 after rejected event", n)
	}
}

func TestIdentityWebhook_UnhandledEventType(t *testing.T) {
	h, _ := newTestIdentityHandler(t, "ent_idh_other")

	payload := []byte(`{"type":"session.ended","data":{"id":"user_1","public_metadata":{}}}`)
	rec := httptest.NewRecorder()
	h.Webhook(rec, signedWebhookRequest(t, payload, "msg_2"))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for acknowledged but unhandled event", rec.Code)
	}
}
