package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/avelar/pixelmint/internal/ent"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"
	"github.com/avelar/pixelmint/internal/identity"

	_ "github.com/mattn/go-sqlite3"
)

func newTestBillingService(t *testing.T, name string) (*BillingService, *identity.MockMetadataWriter) {
	t.Helper()
	client := newTestClient(t, name)
	mock := identity.NewMockMetadataWriter()

	billing := &BillingService{
		db:            client,
		points:        NewPointsService(client, testLogger()),
		metadata:      mock,
		webhookSecret: "whsec_test",
		priceMonthly:  "price_monthly",
		priceYearly:   "price_yearly",
		frontendURL:   "http://localhost:3000",
		logger:        testLogger(),
	}
	return billing, mock
}

func subscriptionEvent(t *testing.T, eventType string, prev map[string]interface{}, fields map[string]interface{}) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal subscription: %v", err)
	}
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{
			Raw:                raw,
			PreviousAttributes: prev,
		},
	}
}

func subscriptionFields(id, customer, status, interval string, start, end time.Time) map[string]interface{} {
	return map[string]interface{}{
		"id":       id,
		"customer": map[string]interface{}{"id": customer},
		"status":   status,
		"items": map[string]interface{}{
			"data": []interface{}{
				map[string]interface{}{
					"price": map[string]interface{}{
						"recurring": map[string]interface{}{"interval": interval},
					},
					"current_period_start": start.Unix(),
					"current_period_end":   end.Unix(),
				},
			},
		},
	}
}

func ledgerOf(t *testing.T, client *ent.Client, userID string) *ent.UserLedger {
	t.Helper()
	return client.UserLedger.Query().Where(entledger.UserIDEQ(userID)).OnlyX(context.Background())
}

func TestProcessEvent_CheckoutCompleted_Payment(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_checkout_pay")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 5)

	raw, _ := json.Marshal(map[string]interface{}{
		"id":             "cs_test_123",
		"mode":           "payment",
		"payment_intent": map[string]interface{}{"id": "pi_123"},
		"metadata": map[string]string{
			"points":  "50000",
			"user_id": "user_1",
		},
	})
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != 50005 {
		t.Errorf("balance = %d, want 50005", l.PointsRemaining)
	}

	txs := l.QueryTransactions().AllX(ctx)
	if len(txs) != 1 || txs[0].Reason != ReasonPurchase || txs[0].ExternalRef != "pi_123" {
		t.Errorf("transactions = %+v", txs)
	}
}

func TestProcessEvent_CheckoutCompleted_Subscription(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_checkout_sub")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 5)

	raw, _ := json.Marshal(map[string]interface{}{
		"id":                  "cs_test_456",
		"mode":                "subscription",
		"client_reference_id": "user_1",
		"customer":            map[string]interface{}{"id": "cus_123"},
		"subscription":        map[string]interface{}{"id": "sub_123"},
	})
	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	// Identifiers recorded, no points yet: the subscription event credits.
	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != 5 {
		t.Errorf("balance = %d, want 5 (no credit at checkout)", l.PointsRemaining)
	}
	if l.StripeCustomerID == nil || *l.StripeCustomerID != "cus_123" {
		t.Errorf("customer id = %v", l.StripeCustomerID)
	}
	if l.StripeSubscriptionID == nil || *l.StripeSubscriptionID != "sub_123" {
		t.Errorf("subscription id = %v", l.StripeSubscriptionID)
	}
	if l.SubscriptionStatus != "active" {
		t.Errorf("status = %q", l.SubscriptionStatus)
	}
}

func TestProcessEvent_SubscriptionCreated_Monthly(t *testing.T) {
	svc, mock := newTestBillingService(t, "ent_billing_sub_monthly")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 0)
	svc.db.UserLedger.Update().SetStripeCustomerID("cus_123").SaveX(ctx)

	start := time.Now()
	end := start.AddDate(0, 1, 0)
	event := subscriptionEvent(t, "customer.subscription.created", nil,
		subscriptionFields("sub_123", "cus_123", "active", "month", start, end))

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != MonthlyCreditPoints {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, MonthlyCreditPoints)
	}
	if l.SubscriptionType != "monthly" {
		t.Errorf("type = %q", l.SubscriptionType)
	}
	if l.NextPointsCredit != nil {
		t.Errorf("next credit = %v, want nil for monthly", l.NextPointsCredit)
	}

	txs := l.QueryTransactions().AllX(ctx)
	if len(txs) != 1 || txs[0].Reason != ReasonSubscriptionPurchased {
		t.Errorf("transactions = %+v", txs)
	}

	meta := mock.Metadata["user_1"]
	if meta == nil || meta.SubscriptionType != "monthly" || meta.PointsPerCredit != MonthlyCreditPoints {
		t.Errorf("mirrored metadata = %+v", meta)
	}
}

func TestProcessEvent_SubscriptionCreated_Yearly(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_sub_yearly")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 0)
	svc.db.UserLedger.Update().SetStripeCustomerID("cus_123").SaveX(ctx)

	start := time.Now()
	end := start.AddDate(1, 0, 0)
	event := subscriptionEvent(t, "customer.subscription.created", nil,
		subscriptionFields("sub_123", "cus_123", "active", "year", start, end))

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != YearlyCreditPoints {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, YearlyCreditPoints)
	}
	if l.NextPointsCredit == nil {
		t.Fatal("next credit not scheduled for yearly subscription")
	}
	expected := time.Now().AddDate(0, 1, 0)
	if diff := l.NextPointsCredit.Sub(expected); diff < -time.Hour || diff > time.Hour {
		t.Errorf("next credit = %v, want about %v", l.NextPointsCredit, expected)
	}
}

func TestProcessEvent_SubscriptionCreated_YearlyNearPeriodEnd(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_sub_yearly_cap")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 0)
	svc.db.UserLedger.Update().SetStripeCustomerID("cus_123").SaveX(ctx)

	// Period ends in two weeks: one month out would overshoot, so no further
	// credit is scheduled.
	start := time.Now()
	end := start.AddDate(0, 0, 14)
	event := subscriptionEvent(t, "customer.subscription.created", nil,
		subscriptionFields("sub_123", "cus_123", "active", "year", start, end))

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.NextPointsCredit != nil {
		t.Errorf("next credit = %v, want nil past period end", l.NextPointsCredit)
	}
}

func TestProcessEvent_SubscriptionUpdated_Activation(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_upd_activate")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 0)
	svc.db.UserLedger.Update().SetStripeCustomerID("cus_123").SaveX(ctx)

	start := time.Now()
	end := start.AddDate(0, 1, 0)
	// Status flipped, period unchanged: first activation.
	event := subscriptionEvent(t, "customer.subscription.updated",
		map[string]interface{}{"status": "incomplete"},
		subscriptionFields("sub_123", "cus_123", "active", "month", start, end))

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != MonthlyCreditPoints {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, MonthlyCreditPoints)
	}
	txs := l.QueryTransactions().AllX(ctx)
	if len(txs) != 1 || txs[0].Reason != ReasonSubscriptionPurchased {
		t.Errorf("transactions = %+v, want subscription_purchased", txs)
	}
}

func TestProcessEvent_SubscriptionUpdated_Renewal(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_upd_renew")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 0)
	svc.db.UserLedger.Update().
		SetStripeCustomerID("cus_123").
		SetStripeSubscriptionID("sub_123").
		SetSubscriptionStatus("active").
		SaveX(ctx)

	start := time.Now()
	end := start.AddDate(0, 1, 0)
	// Period start moved: a renewal, credited as subscription_credit.
	event := subscriptionEvent(t, "customer.subscription.updated",
		map[string]interface{}{"current_period_start": start.AddDate(0, -1, 0).Unix()},
		subscriptionFields("sub_123", "cus_123", "active", "month", start, end))

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != MonthlyCreditPoints {
		t.Errorf("balance = %d, want %d", l.PointsRemaining, MonthlyCreditPoints)
	}
	txs := l.QueryTransactions().AllX(ctx)
	if len(txs) != 1 || txs[0].Reason != ReasonSubscriptionCredit {
		t.Errorf("transactions = %+v, want subscription_credit", txs)
	}
}

func TestProcessEvent_SubscriptionUpdated_CancelFlag(t *testing.T) {
	svc, mock := newTestBillingService(t, "ent_billing_upd_cancel")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 100)
	svc.db.UserLedger.Update().
		SetStripeCustomerID("cus_123").
		SetStripeSubscriptionID("sub_123").
		SetSubscriptionStatus("active").
		SaveX(ctx)

	start := time.Now()
	end := start.AddDate(0, 1, 0)
	fields := subscriptionFields("sub_123", "cus_123", "active", "month", start, end)
	fields["cancel_at_period_end"] = true
	// Only the cancel flag moved: no status change, no renewal, no credit.
	event := subscriptionEvent(t, "customer.subscription.updated",
		map[string]interface{}{"cancel_at_period_end": false}, fields)

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != 100 {
		t.Errorf("balance = %d, want 100 (no credit for cancel flag)", l.PointsRemaining)
	}
	if !l.CancelAtPeriodEnd {
		t.Error("cancel_at_period_end not recorded")
	}
	if !mock.Canceled["user_1"] {
		t.Error("cancel flag not mirrored to identity metadata")
	}
}

func TestProcessEvent_SubscriptionDeleted(t *testing.T) {
	svc, mock := newTestBillingService(t, "ent_billing_deleted")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 4200)
	svc.db.UserLedger.Update().
		SetStripeCustomerID("cus_123").
		SetStripeSubscriptionID("sub_123").
		SetSubscriptionStatus("active").
		SetNextPointsCredit(time.Now().AddDate(0, 1, 0)).
		SaveX(ctx)

	raw, _ := json.Marshal(map[string]interface{}{
		"id":       "sub_123",
		"customer": map[string]interface{}{"id": "cus_123"},
		"status":   "canceled",
	})
	event := stripe.Event{
		Type: "customer.subscription.deleted",
		Data: &stripe.EventData{Raw: raw},
	}

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.SubscriptionStatus != "canceled" {
		t.Errorf("status = %q, want canceled", l.SubscriptionStatus)
	}
	if l.StripeSubscriptionID != nil {
		t.Errorf("subscription id = %v, want cleared", l.StripeSubscriptionID)
	}
	if l.NextPointsCredit != nil {
		t.Errorf("next credit = %v, want cleared", l.NextPointsCredit)
	}
	// Granted points outlive the subscription.
	if l.PointsRemaining != 4200 {
		t.Errorf("balance = %d, want 4200", l.PointsRemaining)
	}
	if !mock.Cleared["user_1"] {
		t.Error("identity metadata not cleared")
	}
}

func TestProcessEvent_PaymentFailed(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_payment_failed")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 0)
	svc.db.UserLedger.Update().
		SetStripeCustomerID("cus_123").
		SetSubscriptionStatus("active").
		SaveX(ctx)

	raw, _ := json.Marshal(map[string]interface{}{
		"id":       "in_123",
		"customer": map[string]interface{}{"id": "cus_123"},
	})
	event := stripe.Event{
		Type: "invoice.payment_failed",
		Data: &stripe.EventData{Raw: raw},
	}

	if err := svc.processEvent(ctx, event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.SubscriptionStatus != "past_due" {
		t.Errorf("status = %q, want past_due", l.SubscriptionStatus)
	}
}

func TestRecordEvent_Duplicate(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_dup")
	ctx := context.Background()

	dup, err := svc.recordEvent(ctx, "stripe", "evt_123", "checkout.session.completed")
	if err != nil || dup {
		t.Fatalf("first record: dup=%v err=%v", dup, err)
	}

	dup, err = svc.recordEvent(ctx, "stripe", "evt_123", "checkout.session.completed")
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if !dup {
		t.Error("redelivered event not detected as duplicate")
	}

	// Same id from a different provider is distinct.
	dup, err = svc.recordEvent(ctx, "clerk", "evt_123", "user.created")
	if err != nil || dup {
		t.Errorf("cross-provider record: dup=%v err=%v", dup, err)
	}
}

func signedEvent(t *testing.T, secret, eventID, eventType string, object map[string]interface{}) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"id":          eventID,
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"data":        map[string]interface{}{"object": object},
	})
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestHandleWebhookEvent_ReplayedDeliveryCreditsOnce(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_replay")
	ctx := context.Background()

	seedLedger(t, svc.db, "user_1", 5)

	payload, header := signedEvent(t, svc.webhookSecret, "evt_replay", "checkout.session.completed",
		map[string]interface{}{
			"id":             "cs_replay",
			"mode":           "payment",
			"payment_intent": map[string]interface{}{"id": "pi_replay"},
			"metadata": map[string]string{
				"points":  "10000",
				"user_id": "user_1",
			},
		})

	if err := svc.HandleWebhookEvent(ctx, payload, header); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := svc.HandleWebhookEvent(ctx, payload, header); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != 10005 {
		t.Errorf("balance = %d, want 10005", l.PointsRemaining)
	}
	if n := l.QueryTransactions().CountX(ctx); n != 1 {
		t.Errorf("transactions = %d, want 1", n)
	}
}

func TestHandleWebhookEvent_FailedDeliveryStaysRetryable(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_retry")
	ctx := context.Background()

	now := time.Now()
	payload, header := signedEvent(t, svc.webhookSecret, "evt_retry", "customer.subscription.created",
		subscriptionFields("sub_retry", "cus_retry", "active", "month", now, now.Add(30*24*time.Hour)))

	// Out-of-order delivery: the subscription event lands before checkout
	// has linked the customer, so processing fails and Stripe will retry.
	if err := svc.HandleWebhookEvent(ctx, payload, header); err == nil {
		t.Fatal("want error for unknown customer")
	}

	seedLedger(t, svc.db, "user_1", 0)
	svc.db.UserLedger.Update().SetStripeCustomerID("cus_retry").SaveX(ctx)

	// The identical redelivery must be processed, not absorbed as a
	// duplicate of the failed attempt.
	if err := svc.HandleWebhookEvent(ctx, payload, header); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	l := ledgerOf(t, svc.db, "user_1")
	if l.PointsRemaining != MonthlyCreditPoints {
		t.Errorf("balance = %d, want %d (credit lost on retry)", l.PointsRemaining, MonthlyCreditPoints)
	}
}

func TestProcessEvent_UnhandledType(t *testing.T) {
	svc, _ := newTestBillingService(t, "ent_billing_unhandled")

	event := stripe.Event{
		Type: "customer.created",
		Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
	}
	if err := svc.processEvent(context.Background(), event); err != nil {
		t.Fatalf("processEvent: %v", err)
	}
}
