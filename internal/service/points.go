package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avelar/pixelmint/internal/ent"
	entsession "github.com/avelar/pixelmint/internal/ent/anonymoussession"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"
)

const (
	// GenerationCost is the points price of a single generation.
	GenerationCost = 1

	// DailyBonusPoints is granted once per 24h window on balance read.
	DailyBonusPoints = 10

	// SignupBasePoints is the base allotment a new user ledger starts with,
	// on top of any carried-over anonymous balance.
	SignupBasePoints = 10

	dailyBonusWindow = 24 * time.Hour
)

// Credit reasons recorded on the transaction log.
const (
	ReasonPurchase              = "purchase"
	ReasonSubscriptionPurchased = "subscription_purchased"
	ReasonSubscriptionCredit    = "subscription_credit"
	ReasonSignupBonus           = "signup_bonus"
	ReasonDailyBonus            = "daily_bonus"
)

// PointsService is the authoritative points ledger. Every balance mutation is
// a single conditional statement at the storage layer; the service never
// computes a new balance in application code and writes it back.
type PointsService struct {
	db     *ent.Client
	logger *slog.Logger
}

// NewPointsService creates a new PointsService.
func NewPointsService(db *ent.Client, logger *slog.Logger) *PointsService {
	return &PointsService{db: db, logger: logger}
}

// BalanceInfo is a point-in-time read of an identity's balance.
type BalanceInfo struct {
	Balance int
	// ShouldReauthenticate is true when the anonymous session was already
	// converted: the zeroed balance means "sign back in", not "out of points".
	ShouldReauthenticate bool
}

// Balance reads the current balance. A user with no ledger row reads as zero
// rather than erroring; the row appears when the identity provider's signup
// event lands.
func (s *PointsService) Balance(ctx context.Context, id Identity) (*BalanceInfo, error) {
	switch {
	case id.IsUser():
		l, err := s.db.UserLedger.Query().
			Where(entledger.UserIDEQ(id.UserID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return &BalanceInfo{}, nil
			}
			return nil, fmt.Errorf("query ledger: %w", err)
		}
		return &BalanceInfo{Balance: l.PointsRemaining}, nil

	case id.SessionID != 0:
		sess, err := s.db.AnonymousSession.Get(ctx, id.SessionID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("get session: %w", err)
		}
		return &BalanceInfo{
			Balance:              sess.PointsRemaining,
			ShouldReauthenticate: sess.Status == "converted",
		}, nil

	default:
		return nil, ErrInvalidIdentity
	}
}

// Decision is the entitlement gate's answer for a prospective generation.
type Decision struct {
	Allowed            bool
	MustReauthenticate bool
	Balance            int
	Required           int
}

// Authorize answers "can this caller start a generation job". A converted
// session is denied regardless of its numeric balance. The check is advisory:
// the spend is committed by Deduct after the job exists, and Deduct's
// conditional update is the actual safety net under concurrent submissions.
func (s *PointsService) Authorize(ctx context.Context, id Identity, cost int) (*Decision, error) {
	info, err := s.Balance(ctx, id)
	if err != nil {
		return nil, err
	}

	if info.ShouldReauthenticate {
		return &Decision{MustReauthenticate: true, Balance: info.Balance, Required: cost}, nil
	}
	return &Decision{
		Allowed:  info.Balance >= cost,
		Balance:  info.Balance,
		Required: cost,
	}, nil
}

// Deduct atomically decrements the balance, failing with
// InsufficientPointsError instead of ever going negative. Returns the new
// balance.
func (s *PointsService) Deduct(ctx context.Context, id Identity, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("deduct amount must be positive, got %d", amount)
	}

	switch {
	case id.IsUser():
		n, err := s.db.UserLedger.Update().
			Where(
				entledger.UserIDEQ(id.UserID),
				entledger.PointsRemainingGTE(amount),
			).
			AddPointsRemaining(-amount).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("deduct user points: %w", err)
		}
		if n == 0 {
			info, berr := s.Balance(ctx, id)
			if berr != nil {
				return 0, berr
			}
			return info.Balance, &InsufficientPointsError{Balance: info.Balance, Required: amount}
		}

	case id.SessionID != 0:
		n, err := s.db.AnonymousSession.Update().
			Where(
				entsession.IDEQ(id.SessionID),
				entsession.StatusEQ("active"),
				entsession.PointsRemainingGTE(amount),
			).
			AddPointsRemaining(-amount).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("deduct session points: %w", err)
		}
		if n == 0 {
			info, berr := s.Balance(ctx, id)
			if berr != nil {
				return 0, berr
			}
			if info.ShouldReauthenticate {
				return info.Balance, ErrMustReauthenticate
			}
			return info.Balance, &InsufficientPointsError{Balance: info.Balance, Required: amount}
		}

	default:
		return 0, ErrInvalidIdentity
	}

	info, err := s.Balance(ctx, id)
	if err != nil {
		return 0, err
	}
	return info.Balance, nil
}

// Credit atomically increments a user's balance and appends the audit
// transaction in the same database transaction, so the balance can always be
// reconstructed from the log. Returns the new balance.
func (s *PointsService) Credit(ctx context.Context, userID string, amount int, reason, externalRef, description string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	newBalance, err := s.creditTx(ctx, tx, userID, amount, reason, externalRef, description)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit credit: %w", err)
	}

	s.logger.Info("points credited",
		"user_id", userID, "amount", amount, "reason", reason, "balance", newBalance)
	return newBalance, nil
}

func (s *PointsService) creditTx(ctx context.Context, tx *ent.Tx, userID string, amount int, reason, externalRef, description string) (int, error) {
	l, err := tx.UserLedger.Query().
		Where(entledger.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("query ledger: %w", err)
	}

	l, err = tx.UserLedger.UpdateOne(l).
		AddPointsRemaining(amount).
		AddTotalPointsEarned(amount).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("credit ledger: %w", err)
	}

	if description == "" {
		description = fmt.Sprintf("%d points added", amount)
	}
	_, err = tx.PointsTransaction.Create().
		SetLedger(l).
		SetAmount(amount).
		SetReason(reason).
		SetExternalRef(externalRef).
		SetBalanceAfter(l.PointsRemaining).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("append transaction: %w", err)
	}

	return l.PointsRemaining, nil
}

// ClaimDailyBonus grants the fixed bonus when the identity's last grant is
// more than 24h old (or absent). The grant is a single conditional update:
// concurrent reads inside the same window race to flip last_bonus_at and only
// one wins. Returns whether a grant happened and the current balance.
func (s *PointsService) ClaimDailyBonus(ctx context.Context, id Identity) (bool, int, error) {
	now := time.Now()
	cutoff := now.Add(-dailyBonusWindow)

	var granted bool
	switch {
	case id.IsUser():
		tx, err := s.db.Tx(ctx)
		if err != nil {
			return false, 0, fmt.Errorf("begin tx: %w", err)
		}
		n, err := tx.UserLedger.Update().
			Where(
				entledger.UserIDEQ(id.UserID),
				entledger.Or(
					entledger.LastBonusAtIsNil(),
					entledger.LastBonusAtLT(cutoff),
				),
			).
			AddPointsRemaining(DailyBonusPoints).
			AddTotalPointsEarned(DailyBonusPoints).
			SetLastBonusAt(now).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return false, 0, fmt.Errorf("grant user bonus: %w", err)
		}
		if n > 0 {
			// The audit row commits with the grant so the balance stays
			// reconstructable from the transaction log.
			l, lerr := tx.UserLedger.Query().
				Where(entledger.UserIDEQ(id.UserID)).
				Only(ctx)
			if lerr != nil {
				_ = tx.Rollback()
				return false, 0, fmt.Errorf("load ledger: %w", lerr)
			}
			_, lerr = tx.PointsTransaction.Create().
				SetLedger(l).
				SetAmount(DailyBonusPoints).
				SetReason(ReasonDailyBonus).
				SetBalanceAfter(l.PointsRemaining).
				SetDescription("daily bonus").
				Save(ctx)
			if lerr != nil {
				_ = tx.Rollback()
				return false, 0, fmt.Errorf("append transaction: %w", lerr)
			}
		}
		if err := tx.Commit(); err != nil {
			return false, 0, fmt.Errorf("commit bonus: %w", err)
		}
		granted = n > 0

	case id.SessionID != 0:
		n, err := s.db.AnonymousSession.Update().
			Where(
				entsession.IDEQ(id.SessionID),
				entsession.StatusEQ("active"),
				entsession.Or(
					entsession.LastBonusAtIsNil(),
					entsession.LastBonusAtLT(cutoff),
				),
			).
			AddPointsRemaining(DailyBonusPoints).
			SetLastBonusAt(now).
			Save(ctx)
		if err != nil {
			return false, 0, fmt.Errorf("grant session bonus: %w", err)
		}
		granted = n > 0

	default:
		return false, 0, ErrInvalidIdentity
	}

	info, err := s.Balance(ctx, id)
	if err != nil {
		return false, 0, err
	}
	if granted {
		s.logger.Info("daily bonus granted",
			"user_id", id.UserID, "session_id", id.SessionID, "balance", info.Balance)
	}
	return granted, info.Balance, nil
}
