package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/avelar/pixelmint/internal/auth"
	"github.com/avelar/pixelmint/internal/cache"
	"github.com/avelar/pixelmint/internal/ent/enttest"
	"github.com/avelar/pixelmint/internal/service"

	_ "github.com/mattn/go-sqlite3"
)

const testJWTSecret = "test-secret"

func newTestResolver(t *testing.T, name string) (*Resolver, *cache.Memory) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+name+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store := cache.NewMemory()
	sessions := service.NewSessionService(client, logger)
	return NewResolver(testJWTSecret, sessions, store, false, logger), store
}

func identityEcho(t *testing.T, captured *service.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			t.Error("no identity in context")
		}
		*captured = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestResolver_AnonymousMintsSessionAndCookie(t *testing.T) {
	rv, _ := newTestResolver(t, "ent_resolver_anon")

	var id service.Identity
	h := rv.Handler(identityEcho(t, &id))

	req := httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("X-Real-IP", "203.0.113.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if id.IsUser() || id.SessionID == 0 || id.SessionToken == "" {
		t.Errorf("identity = %+v, want anonymous session", id)
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("no session cookie set")
	}
	if sessionCookie.Value != id.SessionToken || !sessionCookie.HttpOnly {
		t.Errorf("cookie = %+v", sessionCookie)
	}

	// Same cookie resolves to the same session.
	var second service.Identity
	h = rv.Handler(identityEcho(t, &second))
	req = httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("X-Real-IP", "203.0.113.9")
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if second.SessionID != id.SessionID {
		t.Errorf("second request got session %d, want %d", second.SessionID, id.SessionID)
	}
}

func TestResolver_SameIPSharesSession(t *testing.T) {
	rv, _ := newTestResolver(t, "ent_resolver_ip")

	var first, second service.Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	rv.Handler(identityEcho(t, &first)).ServeHTTP(rec, req)

	// No cookie this time; the IP mapping still finds the session.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	rec = httptest.NewRecorder()
	rv.Handler(identityEcho(t, &second)).ServeHTTP(rec, req)

	if first.SessionID == 0 || first.SessionID != second.SessionID {
		t.Errorf("sessions %d and %d, want shared per IP", first.SessionID, second.SessionID)
	}
}

func TestResolver_JWTUser(t *testing.T) {
	rv, _ := newTestResolver(t, "ent_resolver_jwt")

	token, err := auth.GenerateToken(testJWTSecret, "user_42", "u@example.com", "session", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var id service.Identity
	req := httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	rv.Handler(identityEcho(t, &id)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !id.IsUser() || id.UserID != "user_42" {
		t.Errorf("identity = %+v, want user_42", id)
	}
}

func TestResolver_InvalidJWT(t *testing.T) {
	rv, _ := newTestResolver(t, "ent_resolver_badjwt")

	req := httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	rv.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with invalid token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestResolver_RateLimited(t *testing.T) {
	rv, store := newTestResolver(t, "ent_resolver_rate")

	// Exhaust the window for this IP up front.
	for i := 0; i < cache.MaxRequestsPerWindow; i++ {
		if _, err := store.IncrRequests(context.Background(), "203.0.113.1"); err != nil {
			t.Fatalf("incr: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("X-Real-IP", "203.0.113.1")
	rec := httptest.NewRecorder()
	rv.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached past the rate ceiling")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
}
