package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avelar/pixelmint/internal/ent"
	entsession "github.com/avelar/pixelmint/internal/ent/anonymoussession"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"
	entwebhook "github.com/avelar/pixelmint/internal/ent/webhookevent"
)

// SessionService manages durable anonymous sessions and their one-time
// promotion into user ledgers.
type SessionService struct {
	db     *ent.Client
	logger *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *ent.Client, logger *slog.Logger) *SessionService {
	return &SessionService{db: db, logger: logger}
}

// GetOrCreate returns the active session for an IP, creating one with a fresh
// token and zero points when none exists. Points arrive through the daily
// bonus, not at creation.
func (s *SessionService) GetOrCreate(ctx context.Context, ip string) (*ent.AnonymousSession, error) {
	sess, err := s.db.AnonymousSession.Query().
		Where(
			entsession.IPAddressEQ(ip),
			entsession.StatusEQ("active"),
		).
		First(ctx)
	if err == nil {
		return sess, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query session: %w", err)
	}

	sess, err = s.db.AnonymousSession.Create().
		SetToken(uuid.NewString()).
		SetIPAddress(ip).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("anonymous session created", "session_id", sess.ID, "ip", ip)
	return sess, nil
}

// GetByToken looks up a session by its cookie token.
func (s *SessionService) GetByToken(ctx context.Context, token string) (*ent.AnonymousSession, error) {
	sess, err := s.db.AnonymousSession.Query().
		Where(entsession.TokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session by token: %w", err)
	}
	return sess, nil
}

// Touch stamps last_used_at. Best-effort; failures are logged, not surfaced.
func (s *SessionService) Touch(ctx context.Context, sessionID int) {
	if err := s.db.AnonymousSession.UpdateOneID(sessionID).Exec(ctx); err != nil {
		s.logger.Warn("session touch failed", "session_id", sessionID, "error", err)
	}
}

// Promote merges an anonymous session's balance into a new user ledger,
// exactly once per user. Triggered by the identity provider's user lifecycle
// webhook; the session token travels in the event's public metadata.
//
// Idempotent: an existing ledger row means the event was already processed.
// A missing or non-active session does not fail the signup; the ledger is
// created with just the base allotment.
func (s *SessionService) Promote(ctx context.Context, userID, sessionToken string) (*ent.UserLedger, error) {
	existing, err := s.db.UserLedger.Query().
		Where(entledger.UserIDEQ(userID)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query ledger: %w", err)
	}

	var sess *ent.AnonymousSession
	if sessionToken != "" {
		sess, err = s.db.AnonymousSession.Query().
			Where(
				entsession.TokenEQ(sessionToken),
				entsession.StatusEQ("active"),
			).
			Only(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				return nil, fmt.Errorf("query session: %w", err)
			}
			s.logger.Warn("promotion without usable session, granting base allotment only",
				"user_id", userID, "session_token", sessionToken)
			sess = nil
		}
	}

	total := SignupBasePoints
	if sess != nil {
		total += sess.PointsRemaining
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	ledger, err := s.promoteTx(ctx, tx, userID, sess, total)
	if err != nil {
		_ = tx.Rollback()
		// Concurrent delivery of the same event: the other writer won.
		if ent.IsConstraintError(err) {
			return s.db.UserLedger.Query().
				Where(entledger.UserIDEQ(userID)).
				Only(ctx)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit promotion: %w", err)
	}

	s.logger.Info("session promoted to user ledger",
		"user_id", userID, "points", total, "session_merged", sess != nil)
	return ledger, nil
}

func (s *SessionService) promoteTx(ctx context.Context, tx *ent.Tx, userID string, sess *ent.AnonymousSession, total int) (*ent.UserLedger, error) {
	ledger, err := tx.UserLedger.Create().
		SetUserID(userID).
		SetPointsRemaining(total).
		SetTotalPointsEarned(total).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create ledger: %w", err)
	}

	_, err = tx.PointsTransaction.Create().
		SetLedger(ledger).
		SetAmount(total).
		SetReason(ReasonSignupBonus).
		SetBalanceAfter(total).
		SetDescription(fmt.Sprintf("Signup: %d base points plus carried-over balance", SignupBasePoints)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}

	if sess != nil {
		_, err = tx.AnonymousSession.UpdateOne(sess).
			SetStatus("converted").
			SetPointsRemaining(0).
			SetConvertedUserID(userID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("convert session: %w", err)
		}
	}

	return ledger, nil
}

// MarkWebhookProcessed records a lifecycle event delivery in the idempotency
// log. A constraint violation means this delivery was already handled.
func (s *SessionService) MarkWebhookProcessed(ctx context.Context, provider, eventID, eventType string) (duplicate bool, err error) {
	_, err = s.db.WebhookEvent.Create().
		SetProvider(provider).
		SetEventID(eventID).
		SetEventType(eventType).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return true, nil
		}
		return false, fmt.Errorf("record event: %w", err)
	}
	return false, nil
}

// ForgetWebhookEvent removes an idempotency record after a failed processing
// attempt, so the provider's redelivery is handled rather than treated as a
// duplicate.
func (s *SessionService) ForgetWebhookEvent(ctx context.Context, provider, eventID string) error {
	_, err := s.db.WebhookEvent.Delete().
		Where(
			entwebhook.ProviderEQ(provider),
			entwebhook.EventIDEQ(eventID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("forget event: %w", err)
	}
	return nil
}

// ExpiryPolicy decides which stale sessions and abandoned pending jobs to
// expire. No reaper behavior is mandated; deployments plug in their own.
type ExpiryPolicy interface {
	Sweep(ctx context.Context, db *ent.Client) error
}

// NoExpiry is the default policy: sessions and pending jobs are kept forever.
type NoExpiry struct{}

func (NoExpiry) Sweep(ctx context.Context, db *ent.Client) error { return nil }
