package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/avelar/pixelmint/internal/ent"
	"github.com/avelar/pixelmint/internal/ent/enttest"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"

	_ "github.com/mattn/go-sqlite3"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func newTestClient(t *testing.T, name string) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+name+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func seedLedger(t *testing.T, client *ent.Client, userID string, balance int) *ent.UserLedger {
	t.Helper()
	l, err := client.UserLedger.Create().
		SetUserID(userID).
		SetPointsRemaining(balance).
		SetTotalPointsEarned(balance).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed ledger: %v", err)
	}
	return l
}

func seedSession(t *testing.T, client *ent.Client, ip string, balance int) *ent.AnonymousSession {
	t.Helper()
	s, err := client.AnonymousSession.Create().
		SetToken("tok-" + ip).
		SetIPAddress(ip).
		SetPointsRemaining(balance).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return s
}

func TestDeduct_User(t *testing.T) {
	client := newTestClient(t, "ent_points_user")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	seedLedger(t, client, "user_1", 3)

	remaining, err := svc.Deduct(ctx, User("user_1"), 1)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if remaining != 2 {
		t.Errorf("remaining = %d, want 2", remaining)
	}
}

func TestDeduct_InsufficientBalance(t *testing.T) {
	client := newTestClient(t, "ent_points_insufficient")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	seedLedger(t, client, "user_1", 0)

	_, err := svc.Deduct(ctx, User("user_1"), 1)
	var insufficient *InsufficientPointsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientPointsError", err)
	}
	if insufficient.Balance != 0 || insufficient.Required != 1 {
		t.Errorf("got balance=%d required=%d", insufficient.Balance, insufficient.Required)
	}

	// Balance must be untouched.
	l := client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	if l.PointsRemaining != 0 {
		t.Errorf("balance = %d, want 0", l.PointsRemaining)
	}
}

func TestDeduct_NeverGoesNegative(t *testing.T) {
	client := newTestClient(t, "ent_points_drain")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	seedLedger(t, client, "user_1", 5)

	// Drain past the balance; only the first five may land.
	successes := 0
	for i := 0; i < 20; i++ {
		if _, err := svc.Deduct(ctx, User("user_1"), 1); err == nil {
			successes++
		}
	}
	if successes != 5 {
		t.Errorf("successful deducts = %d, want 5", successes)
	}

	l := client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	if l.PointsRemaining != 0 {
		t.Errorf("final balance = %d, want 0", l.PointsRemaining)
	}
}

func TestDeduct_ConvertedSession(t *testing.T) {
	client := newTestClient(t, "ent_points_converted")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	sess := seedSession(t, client, "10.0.0.1", 5)
	client.AnonymousSession.UpdateOne(sess).
		SetStatus("converted").
		SetPointsRemaining(0).
		SetConvertedUserID("user_1").
		ExecX(ctx)

	_, err := svc.Deduct(ctx, Anonymous(sess.ID, sess.Token), 1)
	if !errors.Is(err, ErrMustReauthenticate) {
		t.Fatalf("err = %v, want ErrMustReauthenticate", err)
	}
}

func TestBalance_MissingLedgerReadsZero(t *testing.T) {
	client := newTestClient(t, "ent_points_missing")
	svc := NewPointsService(client, testLogger())

	info, err := svc.Balance(context.Background(), User("nobody"))
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if info.Balance != 0 || info.ShouldReauthenticate {
		t.Errorf("got %+v, want zero balance without reauth", info)
	}
}

func TestAuthorize(t *testing.T) {
	client := newTestClient(t, "ent_points_authorize")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	seedLedger(t, client, "rich", 10)
	seedLedger(t, client, "broke", 0)

	d, err := svc.Authorize(ctx, User("rich"), GenerationCost)
	if err != nil || !d.Allowed {
		t.Fatalf("rich: decision=%+v err=%v, want allowed", d, err)
	}

	d, err = svc.Authorize(ctx, User("broke"), GenerationCost)
	if err != nil {
		t.Fatalf("broke: %v", err)
	}
	if d.Allowed || d.Balance != 0 || d.Required != GenerationCost {
		t.Errorf("broke: decision=%+v, want denied with balance", d)
	}
}

func TestCredit_AppendsAuditRecord(t *testing.T) {
	client := newTestClient(t, "ent_points_credit")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	seedLedger(t, client, "user_1", 5)

	balance, err := svc.Credit(ctx, "user_1", 100, ReasonPurchase, "pi_123", "Points purchase")
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if balance != 105 {
		t.Errorf("balance = %d, want 105", balance)
	}

	l := client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	if l.TotalPointsEarned != 105 {
		t.Errorf("total earned = %d, want 105", l.TotalPointsEarned)
	}

	txs := l.QueryTransactions().AllX(ctx)
	if len(txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs))
	}
	if txs[0].Amount != 100 || txs[0].Reason != ReasonPurchase || txs[0].BalanceAfter != 105 {
		t.Errorf("transaction = %+v", txs[0])
	}
}

func TestCredit_UnknownUser(t *testing.T) {
	client := newTestClient(t, "ent_points_credit_unknown")
	svc := NewPointsService(client, testLogger())

	_, err := svc.Credit(context.Background(), "ghost", 100, ReasonPurchase, "", "")
	if err == nil {
		t.Fatal("want error for unknown user")
	}
}

func TestClaimDailyBonus_OncePerWindow(t *testing.T) {
	client := newTestClient(t, "ent_points_bonus")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	seedLedger(t, client, "user_1", 0)

	granted, balance, err := svc.ClaimDailyBonus(ctx, User("user_1"))
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if !granted || balance != DailyBonusPoints {
		t.Errorf("first claim: granted=%v balance=%d", granted, balance)
	}

	granted, balance, err = svc.ClaimDailyBonus(ctx, User("user_1"))
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if granted || balance != DailyBonusPoints {
		t.Errorf("second claim: granted=%v balance=%d, want no grant", granted, balance)
	}
}

func TestClaimDailyBonus_AppendsAuditRecord(t *testing.T) {
	client := newTestClient(t, "ent_points_bonus_audit")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	seedLedger(t, client, "user_1", 5)

	granted, balance, err := svc.ClaimDailyBonus(ctx, User("user_1"))
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if !granted {
		t.Fatal("want grant")
	}

	l := client.UserLedger.Query().Where(entledger.UserIDEQ("user_1")).OnlyX(ctx)
	txs := l.QueryTransactions().AllX(ctx)
	if len(txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs))
	}
	if txs[0].Amount != DailyBonusPoints || txs[0].Reason != ReasonDailyBonus || txs[0].BalanceAfter != balance {
		t.Errorf("transaction = %+v", txs[0])
	}

	// A denied claim inside the window must not append a second row.
	if _, _, err := svc.ClaimDailyBonus(ctx, User("user_1")); err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if n := l.QueryTransactions().CountX(ctx); n != 1 {
		t.Errorf("transactions after denied claim = %d, want 1", n)
	}
}

func TestClaimDailyBonus_AfterWindow(t *testing.T) {
	client := newTestClient(t, "ent_points_bonus_window")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	l := seedLedger(t, client, "user_1", 0)
	client.UserLedger.UpdateOne(l).
		SetLastBonusAt(time.Now().Add(-25 * time.Hour)).
		ExecX(ctx)

	granted, balance, err := svc.ClaimDailyBonus(ctx, User("user_1"))
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if !granted || balance != DailyBonusPoints {
		t.Errorf("granted=%v balance=%d, want grant", granted, balance)
	}
}

func TestClaimDailyBonus_Session(t *testing.T) {
	client := newTestClient(t, "ent_points_bonus_session")
	svc := NewPointsService(client, testLogger())
	ctx := context.Background()

	sess := seedSession(t, client, "10.0.0.2", 0)

	granted, balance, err := svc.ClaimDailyBonus(ctx, Anonymous(sess.ID, sess.Token))
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if !granted || balance != DailyBonusPoints {
		t.Errorf("granted=%v balance=%d", granted, balance)
	}

	// Converted sessions never receive the bonus.
	client.AnonymousSession.UpdateOne(sess).SetStatus("converted").ExecX(ctx)
	granted, _, err = svc.ClaimDailyBonus(ctx, Anonymous(sess.ID, sess.Token))
	if err != nil {
		t.Fatalf("converted claim: %v", err)
	}
	if granted {
		t.Error("converted session got a bonus")
	}
}
