package service

import (
	"context"
	"errors"
	"testing"

	entsession "github.com/avelar/pixelmint/internal/ent/anonymoussession"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"

	_ "github.com/mattn/go-sqlite3"
)

func TestGetOrCreate_ReusesActiveSession(t *testing.T) {
	client := newTestClient(t, "ent_session_getorcreate")
	svc := NewSessionService(client, testLogger())
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Token == "" {
		t.Error("session has no token")
	}
	if first.PointsRemaining != 0 {
		t.Errorf("new session balance = %d, want 0", first.PointsRemaining)
	}

	second, err := svc.GetOrCreate(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("reuse: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("got new session %d, want reuse of %d", second.ID, first.ID)
	}

	other, err := svc.GetOrCreate(ctx, "10.0.0.2")
	if err != nil {
		t.Fatalf("other ip: %v", err)
	}
	if other.ID == first.ID {
		t.Error("distinct IPs shared a session")
	}
}

func TestGetByToken(t *testing.T) {
	client := newTestClient(t, "ent_session_bytoken")
	svc := NewSessionService(client, testLogger())
	ctx := context.Background()

	sess, err := svc.GetOrCreate(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByToken(ctx, sess.Token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("got session %d, want %d", got.ID, sess.ID)
	}

	if _, err := svc.GetByToken(ctx, "no-such-token"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPromote_MergesSessionBalance(t *testing.T) {
	client := newTestClient(t, "ent_session_promote")
	svc := NewSessionService(client, testLogger())
	ctx := context.Background()

	sess := seedSession(t, client, "10.0.0.1", 7)

	ledger, err := svc.Promote(ctx, "user_1", sess.Token)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if ledger.PointsRemaining != SignupBasePoints+7 {
		t.Errorf("balance = %d, want %d", ledger.PointsRemaining, SignupBasePoints+7)
	}
	if ledger.TotalPointsEarned != SignupBasePoints+7 {
		t.Errorf("total earned = %d, want %d", ledger.TotalPointsEarned, SignupBasePoints+7)
	}

	// Session is converted and zeroed, exactly once.
	got := client.AnonymousSession.GetX(ctx, sess.ID)
	if got.Status != "converted" {
		t.Errorf("session status = %q, want converted", got.Status)
	}
	if got.PointsRemaining != 0 {
		t.Errorf("session balance = %d, want 0", got.PointsRemaining)
	}
	if got.ConvertedUserID == nil || *got.ConvertedUserID != "user_1" {
		t.Errorf("converted_user_id = %v, want user_1", got.ConvertedUserID)
	}

	// The signup bonus is in the audit log.
	txs := ledger.QueryTransactions().AllX(ctx)
	if len(txs) != 1 || txs[0].Reason != ReasonSignupBonus {
		t.Errorf("transactions = %+v, want one signup_bonus", txs)
	}
}

func TestPromote_Idempotent(t *testing.T) {
	client := newTestClient(t, "ent_session_promote_idem")
	svc := NewSessionService(client, testLogger())
	ctx := context.Background()

	sess := seedSession(t, client, "10.0.0.1", 7)

	first, err := svc.Promote(ctx, "user_1", sess.Token)
	if err != nil {
		t.Fatalf("first promote: %v", err)
	}

	// Redelivered event: same outcome, no extra points.
	second, err := svc.Promote(ctx, "user_1", sess.Token)
	if err != nil {
		t.Fatalf("second promote: %v", err)
	}
	if second.ID != first.ID || second.PointsRemaining != first.PointsRemaining {
		t.Errorf("second promote changed the ledger: %+v vs %+v", second, first)
	}

	n := client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).CountX(ctx)
	if n != 1 {
		t.Errorf("ledger rows = %d, want 1", n)
	}
}

func TestPromote_MissingSessionGrantsBaseOnly(t *testing.T) {
	client := newTestClient(t, "ent_session_promote_missing")
	svc := NewSessionService(client, testLogger())
	ctx := context.Background()

	ledger, err := svc.Promote(ctx, "user_1", "no-such-token")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if ledger.PointsRemaining != SignupBasePoints {
		t.Errorf("balance = %d, want %d", ledger.PointsRemaining, SignupBasePoints)
	}
}

func TestPromote_AlreadyConvertedSessionGrantsBaseOnly(t *testing.T) {
	client := newTestClient(t, "ent_session_promote_converted")
	svc := NewSessionService(client, testLogger())
	ctx := context.Background()

	sess := seedSession(t, client, "10.0.0.1", 7)
	if _, err := svc.Promote(ctx, "user_1", sess.Token); err != nil {
		t.Fatalf("first promote: %v", err)
	}

	// A different user presenting the same spent token gets no session points.
	ledger, err := svc.Promote(ctx, "user_2", sess.Token)
	if err != nil {
		t.Fatalf("second promote: %v", err)
	}
	if ledger.PointsRemaining != SignupBasePoints {
		t.Errorf("balance = %d, want %d", ledger.PointsRemaining, SignupBasePoints)
	}

	active := client.AnonymousSession.Query().
		Where(entsession.StatusEQ("active")).
		CountX(ctx)
	if active != 0 {
		t.Errorf("active sessions = %d, want 0", active)
	}
}
