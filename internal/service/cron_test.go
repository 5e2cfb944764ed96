package service

import (
	"context"
	"testing"
	"time"

	"github.com/avelar/pixelmint/internal/identity"

	_ "github.com/mattn/go-sqlite3"
)

func newTestCronService(t *testing.T, name string) (*CronService, *identity.MockMetadataWriter) {
	t.Helper()
	client := newTestClient(t, name)
	mock := identity.NewMockMetadataWriter()
	points := NewPointsService(client, testLogger())
	return NewCronService(client, points, mock, nil, testLogger(), time.Minute), mock
}

func TestDisburseScheduledCredits(t *testing.T) {
	svc, mock := newTestCronService(t, "ent_cron_disburse")
	ctx := context.Background()

	periodEnd := time.Now().AddDate(0, 10, 0)
	seedLedger(t, svc.db, "user_due", 0)
	svc.db.UserLedger.Update().
		SetStripeSubscriptionID("sub_due").
		SetSubscriptionStatus("active").
		SetSubscriptionType("yearly").
		SetSubscriptionPeriodEnd(periodEnd).
		SetNextPointsCredit(time.Now().Add(-time.Hour)).
		SaveX(ctx)

	if err := svc.DisburseScheduledCredits(ctx); err != nil {
		t.Fatalf("disburse: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_due")
	if l.PointsRemaining != YearlyCreditPoints {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, YearlyCreditPoints)
	}
	if l.NextPointsCredit == nil {
		t.Fatal("next credit not rescheduled")
	}
	expected := time.Now().AddDate(0, 1, 0)
	if diff := l.NextPointsCredit.Sub(expected); diff < -time.Hour || diff > time.Hour {
		t.Errorf("next credit = %v, want about %v", l.NextPointsCredit, expected)
	}

	txs := l.QueryTransactions().AllX(ctx)
	if len(txs) != 1 || txs[0].Reason != ReasonSubscriptionCredit {
		t.Errorf("transactions = %+v", txs)
	}
	if mock.Metadata["user_due"] == nil {
		t.Error("metadata not mirrored after disbursement")
	}

	// A second sweep finds nothing due.
	if err := svc.DisburseScheduledCredits(ctx); err != nil {
		t.Fatalf("second disburse: %v", err)
	}
	l = ledgerOf(t, svc.db, "user_due")
	if l.PointsRemaining != YearlyCreditPoints {
		t.Errorf("balance after second sweep = %d, want unchanged", l.PointsRemaining)
	}
}

func TestDisburseScheduledCredits_StopsAtPeriodEnd(t *testing.T) {
	svc, _ := newTestCronService(t, "ent_cron_period_end")
	ctx := context.Background()

	// Last scheduled credit of the term: period ends before the next one.
	seedLedger(t, svc.db, "user_last", 0)
	svc.db.UserLedger.Update().
		SetStripeSubscriptionID("sub_last").
		SetSubscriptionStatus("active").
		SetSubscriptionType("yearly").
		SetSubscriptionPeriodEnd(time.Now().AddDate(0, 0, 10)).
		SetNextPointsCredit(time.Now().Add(-time.Hour)).
		SaveX(ctx)

	if err := svc.DisburseScheduledCredits(ctx); err != nil {
		t.Fatalf("disburse: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_last")
	if l.PointsRemaining != YearlyCreditPoints {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, YearlyCreditPoints)
	}
	if l.NextPointsCredit != nil {
		t.Errorf("next credit = %v, want nil at period end", l.NextPointsCredit)
	}
}

func TestDisburseScheduledCredits_SkipsNotDue(t *testing.T) {
	svc, _ := newTestCronService(t, "ent_cron_not_due")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_future", 0)
	svc.db.UserLedger.Update().
		SetStripeSubscriptionID("sub_future").
		SetSubscriptionStatus("active").
		SetSubscriptionType("yearly").
		SetSubscriptionPeriodEnd(time.Now().AddDate(0, 11, 0)).
		SetNextPointsCredit(time.Now().AddDate(0, 0, 15)).
		SaveX(ctx)

	seedLedger(t, svc.db, "user_canceled", 0)

	if err := svc.DisburseScheduledCredits(ctx); err != nil {
		t.Fatalf("disburse: %v", err)
	}

	if l := ledgerOf(t, svc.db, "user_future"); l.PointsRemaining != 0 {
		t.Errorf("future credit disbursed early: balance = %d", l.PointsRemaining)
	}
	if l := ledgerOf(t, svc.db, "user_canceled"); l.PointsRemaining != 0 {
		t.Errorf("unsubscribed ledger credited: balance = %d", l.PointsRemaining)
	}
}
