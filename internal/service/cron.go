package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avelar/pixelmint/internal/ent"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"
	"github.com/avelar/pixelmint/internal/identity"
)

// CronService runs periodic background tasks: disbursing scheduled yearly
// subscription credits and sweeping expired state.
type CronService struct {
	db       *ent.Client
	points   *PointsService
	metadata identity.MetadataWriter
	expiry   ExpiryPolicy
	logger   *slog.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewCronService creates a new CronService. A nil expiry policy means no
// session or job expiry.
func NewCronService(
	db *ent.Client,
	points *PointsService,
	metadata identity.MetadataWriter,
	expiry ExpiryPolicy,
	logger *slog.Logger,
	interval time.Duration,
) *CronService {
	if expiry == nil {
		expiry = NoExpiry{}
	}
	return &CronService{
		db:       db,
		points:   points,
		metadata: metadata,
		expiry:   expiry,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic loop in a goroutine.
func (c *CronService) Start() {
	go c.run()
	c.logger.Info("cron started", "interval", c.interval)
}

// Stop signals the cron loop to stop.
func (c *CronService) Stop() {
	close(c.stopCh)
	c.logger.Info("cron stopped")
}

func (c *CronService) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.DisburseScheduledCredits(ctx); err != nil {
				c.logger.Error("cron: disburse scheduled credits", "error", err)
			}
			if err := c.expiry.Sweep(ctx, c.db); err != nil {
				c.logger.Error("cron: expiry sweep", "error", err)
			}
			cancel()
		}
	}
}

// DisburseScheduledCredits grants the monthly allotment to yearly subscribers
// whose next credit date has arrived, and schedules the following one.
func (c *CronService) DisburseScheduledCredits(ctx context.Context) error {
	now := time.Now()

	due, err := c.db.UserLedger.Query().
		Where(
			entledger.SubscriptionStatusEQ("active"),
			entledger.SubscriptionTypeEQ("yearly"),
			entledger.NextPointsCreditLTE(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query due credits: %w", err)
	}

	for _, l := range due {
		if err := c.disburseOne(ctx, l, now); err != nil {
			c.logger.Error("disburse credit", "user_id", l.UserID, "error", err)
		}
	}

	if len(due) > 0 {
		c.logger.Info("scheduled credits disbursed", "count", len(due))
	}
	return nil
}

func (c *CronService) disburseOne(ctx context.Context, l *ent.UserLedger, now time.Time) error {
	// Claim the schedule slot before crediting so concurrent sweeps cannot
	// double-credit: advancing next_points_credit is conditional on the value
	// still being due.
	next := now.AddDate(0, 1, 0)
	pastPeriodEnd := l.SubscriptionPeriodEnd != nil && next.After(*l.SubscriptionPeriodEnd)

	upd := c.db.UserLedger.Update().
		Where(
			entledger.IDEQ(l.ID),
			entledger.NextPointsCreditLTE(now),
		)
	if pastPeriodEnd {
		upd = upd.ClearNextPointsCredit()
	} else {
		upd = upd.SetNextPointsCredit(next)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("advance credit schedule: %w", err)
	}
	if n == 0 {
		// Another sweep claimed it first.
		return nil
	}

	ref := ""
	if l.StripeSubscriptionID != nil {
		ref = *l.StripeSubscriptionID
	}
	_, err = c.points.Credit(ctx, l.UserID, YearlyCreditPoints, ReasonSubscriptionCredit, ref,
		fmt.Sprintf("Subscription renewal: %d points", YearlyCreditPoints))
	if err != nil {
		return fmt.Errorf("credit points: %w", err)
	}

	meta := &identity.SubscriptionMetadata{
		SubscriptionType:  "yearly",
		PointsPerCredit:   YearlyCreditPoints,
		SubscriptionEnd:   l.SubscriptionPeriodEnd,
		CancelAtPeriodEnd: l.CancelAtPeriodEnd,
	}
	if l.StripeSubscriptionID != nil {
		meta.StripeSubscriptionID = *l.StripeSubscriptionID
	}
	if l.StripeCustomerID != nil {
		meta.StripeCustomerID = *l.StripeCustomerID
	}
	if !pastPeriodEnd {
		meta.NextPointsCredit = &next
	}
	if merr := c.metadata.UpdateSubscriptionMetadata(ctx, l.UserID, meta); merr != nil {
		c.logger.Warn("metadata mirror update failed", "user_id", l.UserID, "error", merr)
	}

	return nil
}
