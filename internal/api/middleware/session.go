package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avelar/pixelmint/internal/api/response"
	"github.com/avelar/pixelmint/internal/auth"
	"github.com/avelar/pixelmint/internal/cache"
	"github.com/avelar/pixelmint/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionCookieName carries the anonymous session token.
const SessionCookieName = "anon_session_id"

// Resolver turns every request into a service.Identity: an authenticated user
// when a valid JWT is presented, otherwise a durable anonymous session keyed
// by client IP.
type Resolver struct {
	jwtSecret string
	sessions  *service.SessionService
	cache     cache.Store
	secure    bool
	logger    *slog.Logger
}

// NewResolver creates a Resolver. secure controls the session cookie's Secure
// flag.
func NewResolver(jwtSecret string, sessions *service.SessionService, store cache.Store, secure bool, logger *slog.Logger) *Resolver {
	return &Resolver{
		jwtSecret: jwtSecret,
		sessions:  sessions,
		cache:     store,
		secure:    secure,
		logger:    logger,
	}
}

// Handler resolves the request identity and injects it into the context.
func (rv *Resolver) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Authenticated users first: Bearer JWT or session cookie.
		if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := auth.ValidateToken(rv.jwtSecret, tokenStr)
			if err != nil || claims.Purpose != "session" {
				response.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}
			rv.serve(w, r, next, service.User(claims.UserID))
			return
		}
		if cookie, err := r.Cookie("session"); err == nil {
			claims, err := auth.ValidateToken(rv.jwtSecret, cookie.Value)
			if err == nil && claims.Purpose == "session" {
				rv.serve(w, r, next, service.User(claims.UserID))
				return
			}
		}

		// Anonymous path. The request counter is an abuse guard on session
		// resolution; cache failures never block the request.
		ip := clientIP(r)
		if count, err := rv.cache.IncrRequests(r.Context(), ip); err != nil {
			rv.logger.Warn("rate counter unavailable", "ip", ip, "error", err)
		} else if count > cache.MaxRequestsPerWindow {
			response.Error(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		id, err := rv.resolveAnonymous(w, r, ip)
		if err != nil {
			rv.logger.Error("resolve anonymous session", "ip", ip, "error", err)
			response.Error(w, http.StatusInternalServerError, "session resolution failed")
			return
		}
		rv.serve(w, r, next, id)
	})
}

func (rv *Resolver) serve(w http.ResponseWriter, r *http.Request, next http.Handler, id service.Identity) {
	ctx := context.WithValue(r.Context(), identityKey, id)
	next.ServeHTTP(w, r.WithContext(ctx))
}

// resolveAnonymous maps the request to an anonymous session: cookie token
// first (cache, then database), falling back to the active session for the
// client IP, creating one if needed.
func (rv *Resolver) resolveAnonymous(w http.ResponseWriter, r *http.Request, ip string) (service.Identity, error) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if entry, err := rv.cache.GetByToken(r.Context(), cookie.Value); err == nil {
			return service.Anonymous(entry.SessionID, entry.Token), nil
		}

		sess, err := rv.sessions.GetByToken(r.Context(), cookie.Value)
		switch {
		case err == nil:
			rv.cacheSession(r.Context(), sess.ID, sess.Token, ip)
			rv.sessions.Touch(r.Context(), sess.ID)
			return service.Anonymous(sess.ID, sess.Token), nil
		case errors.Is(err, service.ErrNotFound):
			// Stale cookie, fall through and mint a fresh session.
		default:
			return service.Identity{}, err
		}
	}

	if entry, err := rv.cache.GetSession(r.Context(), ip); err == nil {
		rv.setSessionCookie(w, entry.Token)
		return service.Anonymous(entry.SessionID, entry.Token), nil
	}

	sess, err := rv.sessions.GetOrCreate(r.Context(), ip)
	if err != nil {
		return service.Identity{}, err
	}
	rv.cacheSession(r.Context(), sess.ID, sess.Token, ip)
	rv.setSessionCookie(w, sess.Token)
	return service.Anonymous(sess.ID, sess.Token), nil
}

func (rv *Resolver) cacheSession(ctx context.Context, sessionID int, token, ip string) {
	entry := &cache.Entry{
		SessionID:  sessionID,
		Token:      token,
		IPAddress:  ip,
		LastAccess: time.Now(),
	}
	if err := rv.cache.PutSession(ctx, entry); err != nil {
		rv.logger.Warn("session cache write failed", "session_id", sessionID, "error", err)
	}
}

func (rv *Resolver) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cache.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   rv.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clientIP extracts the originating address from proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	return "unknown"
}

// IdentityFrom returns the resolved identity for the request, if any.
func IdentityFrom(ctx context.Context) (service.Identity, bool) {
	id, ok := ctx.Value(identityKey).(service.Identity)
	return id, ok
}

// WithIdentity injects an identity into the context. Intended for tests and
// internal callers.
func WithIdentity(ctx context.Context, id service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
