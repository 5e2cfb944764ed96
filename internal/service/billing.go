package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v82"
	portalsession "github.com/stripe/stripe-go/v82/billingportal/session"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/avelar/pixelmint/internal/ent"
	entledger "github.com/avelar/pixelmint/internal/ent/userledger"
	entwebhook "github.com/avelar/pixelmint/internal/ent/webhookevent"
	"github.com/avelar/pixelmint/internal/identity"
)

// Points credited per subscription period.
const (
	MonthlyCreditPoints = 10000
	YearlyCreditPoints  = 12500
)

// PointsPack is a one-time purchase option.
type PointsPack struct {
	ID          string `json:"id"`
	Points      int    `json:"points"`
	AmountCents int64  `json:"amount_cents"`
	Savings     string `json:"savings,omitempty"`
}

// PointsPacks are the fixed one-time purchase tiers.
var PointsPacks = []PointsPack{
	{ID: "starter", Points: 10000, AmountCents: 500},
	{ID: "popular", Points: 50000, AmountCents: 2250, Savings: "Save 10%"},
	{ID: "pro", Points: 95000, AmountCents: 3600, Savings: "Save 25%"},
	{ID: "enterprise", Points: 300000, AmountCents: 7500, Savings: "Save 50%"},
}

func packByID(id string) *PointsPack {
	for i := range PointsPacks {
		if PointsPacks[i].ID == id {
			return &PointsPacks[i]
		}
	}
	return nil
}

// BillingService reconciles billing-provider events into the points ledger and
// creates checkout/portal sessions.
type BillingService struct {
	db            *ent.Client
	points        *PointsService
	metadata      identity.MetadataWriter
	webhookSecret string
	priceMonthly  string
	priceYearly   string
	frontendURL   string
	logger        *slog.Logger
}

// NewBillingService creates a new BillingService and sets the Stripe API key.
func NewBillingService(
	db *ent.Client,
	points *PointsService,
	metadata identity.MetadataWriter,
	stripeKey string,
	webhookSecret string,
	priceMonthly string,
	priceYearly string,
	frontendURL string,
	logger *slog.Logger,
) *BillingService {
	stripe.Key = stripeKey
	return &BillingService{
		db:            db,
		points:        points,
		metadata:      metadata,
		webhookSecret: webhookSecret,
		priceMonthly:  priceMonthly,
		priceYearly:   priceYearly,
		frontendURL:   frontendURL,
		logger:        logger,
	}
}

// CheckoutRequest selects either a subscription plan or a one-time points pack.
type CheckoutRequest struct {
	Mode string `json:"mode"` // "subscription" (default) or "payment"
	Plan string `json:"plan"` // monthly|yearly, subscription mode
	Pack string `json:"pack"` // pack id, payment mode
}

// CreateCheckoutSession creates a Stripe Checkout session for the given user.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, userID string, req CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		ClientReferenceID:        stripe.String(userID),
		BillingAddressCollection: stripe.String("auto"),
		SuccessURL:               stripe.String(s.frontendURL + "/success?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(s.frontendURL + "/pricing?canceled=true"),
	}

	if req.Mode == "payment" {
		pack := packByID(req.Pack)
		if pack == nil {
			return "", fmt.Errorf("unknown points pack %q", req.Pack)
		}
		params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%d Energy Points", pack.Points)),
						Description: stripe.String("One-time purchase of energy points"),
					},
					UnitAmount: stripe.Int64(pack.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		}
		params.AddMetadata("points", strconv.Itoa(pack.Points))
		params.AddMetadata("user_id", userID)
	} else {
		priceID := s.priceMonthly
		if req.Plan == "yearly" {
			priceID = s.priceYearly
		}
		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		}
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout: %w", err)
	}

	return sess.URL, nil
}

// GetBillingPortalURL creates a Stripe billing portal session.
func (s *BillingService) GetBillingPortalURL(ctx context.Context, userID string) (string, error) {
	l, err := s.ledgerByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if l.StripeCustomerID == nil || *l.StripeCustomerID == "" {
		return "", fmt.Errorf("no billing account")
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  l.StripeCustomerID,
		ReturnURL: stripe.String(s.frontendURL + "/settings"),
	}

	sess, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("create portal: %w", err)
	}

	return sess.URL, nil
}

// HandleWebhookEvent verifies and processes a billing webhook delivery.
// Verification happens before any mutation; the idempotency log makes
// at-least-once delivery safe.
func (s *BillingService) HandleWebhookEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}

	duplicate, err := s.recordEvent(ctx, "stripe", event.ID, string(event.Type))
	if err != nil {
		return err
	}
	if duplicate {
		s.logger.Info("duplicate billing event, skipping", "event_id", event.ID, "event_type", event.Type)
		return nil
	}

	if err := s.processEvent(ctx, event); err != nil {
		// A failed delivery must stay retryable: release the idempotency
		// record so the provider's redelivery is processed instead of
		// absorbed as a duplicate.
		if derr := s.forgetEvent(ctx, "stripe", event.ID); derr != nil {
			s.logger.Error("release event record", "event_id", event.ID, "error", derr)
		}
		return err
	}
	return nil
}

// recordEvent inserts into the idempotency log; a constraint violation means
// the event was already processed.
func (s *BillingService) recordEvent(ctx context.Context, provider, eventID, eventType string) (duplicate bool, err error) {
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

// forgetEvent removes an idempotency record after a failed processing attempt.
func (s *BillingService) forgetEvent(ctx context.Context, provider, eventID string) error {
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

func (s *BillingService) processEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.created":
		return s.handleSubscriptionCreated(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	case "invoice.payment_failed":
		return s.handlePaymentFailed(ctx, event)
	default:
		s.logger.Info("unhandled billing event", "event_type", event.Type)
		return nil
	}
}

func (s *BillingService) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("parse checkout session: %w", err)
	}

	switch sess.Mode {
	case stripe.CheckoutSessionModePayment:
		// One-time points purchase, correlated through checkout metadata.
		if sess.Metadata["points"] == "" || sess.Metadata["user_id"] == "" {
			s.logger.Warn("payment checkout without points metadata", "checkout_id", sess.ID)
			return nil
		}
		points, err := strconv.Atoi(sess.Metadata["points"])
		if err != nil {
			return fmt.Errorf("parse points metadata: %w", err)
		}
		userID := sess.Metadata["user_id"]

		ref := sess.ID
		if sess.PaymentIntent != nil {
			ref = sess.PaymentIntent.ID
		}
		_, err = s.points.Credit(ctx, userID, points, ReasonPurchase, ref,
			fmt.Sprintf("Points purchase: %d points", points))
		if err != nil {
			return fmt.Errorf("credit purchase: %w", err)
		}
		s.logger.Info("points purchase credited", "user_id", userID, "points", points)
		return nil

	case stripe.CheckoutSessionModeSubscription:
		// Record the subscription identifiers only. The point credit comes
		// with the subsequent subscription created/updated event, so the same
		// period is never credited twice.
		if sess.ClientReferenceID == "" {
			return fmt.Errorf("subscription checkout without client_reference_id")
		}

		upd := s.db.UserLedger.Update().
			Where(entledger.UserIDEQ(sess.ClientReferenceID)).
			SetSubscriptionStatus("active").
			SetSubscriptionUpdatedAt(time.Now())
		if sess.Customer != nil {
			upd = upd.SetStripeCustomerID(sess.Customer.ID)
		}
		if sess.Subscription != nil {
			upd = upd.SetStripeSubscriptionID(sess.Subscription.ID)
		}

		n, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update ledger subscription info: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("no ledger for user %s: %w", sess.ClientReferenceID, ErrNotFound)
		}
		s.logger.Info("subscription checkout recorded", "user_id", sess.ClientReferenceID)
		return nil

	default:
		s.logger.Info("checkout completed with unhandled mode", "mode", sess.Mode)
		return nil
	}
}

func (s *BillingService) handleSubscriptionCreated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("parse subscription: %w", err)
	}

	l, err := s.ledgerByCustomer(ctx, &sub)
	if err != nil {
		return err
	}

	return s.applySubscription(ctx, l, &sub, ReasonSubscriptionPurchased)
}

func (s *BillingService) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("parse subscription: %w", err)
	}

	l, err := s.ledgerByCustomer(ctx, &sub)
	if err != nil {
		return err
	}

	// The previous-attributes diff distinguishes a first activation (status
	// flipped, period unchanged) from a period renewal (period start moved).
	prev := event.Data.PreviousAttributes
	_, statusChanged := prev["status"]
	_, renewal := prev["current_period_start"]
	if !renewal {
		_, renewal = prev["items"]
	}

	if statusChanged || renewal {
		reason := ReasonSubscriptionCredit
		if statusChanged && !renewal {
			reason = ReasonSubscriptionPurchased
		}
		if err := s.applySubscription(ctx, l, &sub, reason); err != nil {
			return err
		}
	}

	if sub.CancelAtPeriodEnd {
		// Cancellation is a flag, not a status change. Access and points
		// remain until the period ends and the deletion event arrives.
		_, err := s.db.UserLedger.UpdateOne(l).
			SetCancelAtPeriodEnd(true).
			SetSubscriptionUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("mark cancel at period end: %w", err)
		}
		if merr := s.metadata.MarkCancelAtPeriodEnd(ctx, l.UserID); merr != nil {
			s.logger.Warn("metadata mirror update failed", "user_id", l.UserID, "error", merr)
		}
		s.logger.Info("subscription marked cancelled at period end", "user_id", l.UserID)
	}

	return nil
}

func (s *BillingService) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("parse subscription: %w", err)
	}

	l, err := s.ledgerByCustomer(ctx, &sub)
	if err != nil {
		return err
	}

	// Already-granted points stay with the user; only the subscription state
	// is torn down.
	_, err = s.db.UserLedger.UpdateOne(l).
		SetSubscriptionStatus("canceled").
		ClearStripeSubscriptionID().
		ClearNextPointsCredit().
		SetCancelAtPeriodEnd(false).
		SetSubscriptionUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update subscription status: %w", err)
	}

	if merr := s.metadata.ClearSubscriptionMetadata(ctx, l.UserID); merr != nil {
		s.logger.Warn("metadata mirror clear failed", "user_id", l.UserID, "error", merr)
	}

	s.logger.Info("subscription deleted", "user_id", l.UserID)
	return nil
}

func (s *BillingService) handlePaymentFailed(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("parse invoice: %w", err)
	}
	if invoice.Customer == nil {
		return nil
	}

	n, err := s.db.UserLedger.Update().
		Where(entledger.StripeCustomerID(invoice.Customer.ID)).
		SetSubscriptionStatus("past_due").
		SetSubscriptionUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update subscription status: %w", err)
	}
	if n == 0 {
		s.logger.Warn("payment failed for unknown customer", "customer_id", invoice.Customer.ID)
		return nil
	}

	s.logger.Warn("payment failed", "customer_id", invoice.Customer.ID)
	return nil
}

// applySubscription writes the subscription shadow fields, credits the period
// when the subscription is active, and mirrors metadata to the identity
// provider.
func (s *BillingService) applySubscription(ctx context.Context, l *ent.UserLedger, sub *stripe.Subscription, reason string) error {
	interval, periodStart, periodEnd := subscriptionTerms(sub)
	isYearly := interval == stripe.PriceRecurringIntervalYear

	subType := "monthly"
	points := MonthlyCreditPoints
	if isYearly {
		subType = "yearly"
		points = YearlyCreditPoints
	}

	upd := s.db.UserLedger.UpdateOne(l).
		SetStripeSubscriptionID(sub.ID).
		SetSubscriptionStatus(string(sub.Status)).
		SetSubscriptionType(subType).
		SetSubscriptionUpdatedAt(time.Now())
	if sub.Customer != nil {
		upd = upd.SetStripeCustomerID(sub.Customer.ID)
	}
	if !periodEnd.IsZero() {
		upd = upd.SetSubscriptionPeriodEnd(periodEnd)
	}

	// Yearly subscribers receive their allotment monthly; the next credit is
	// due one calendar month out, unless that would land past the period end.
	var nextCredit *time.Time
	if isYearly && sub.Status == stripe.SubscriptionStatusActive {
		candidate := time.Now().AddDate(0, 1, 0)
		if periodEnd.IsZero() || !candidate.After(periodEnd) {
			nextCredit = &candidate
		}
	}
	if nextCredit != nil {
		upd = upd.SetNextPointsCredit(*nextCredit)
	} else {
		upd = upd.ClearNextPointsCredit()
	}

	l, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update ledger subscription: %w", err)
	}

	if sub.Status != stripe.SubscriptionStatusActive {
		s.logger.Info("subscription not active, no credit",
			"user_id", l.UserID, "status", sub.Status)
		return nil
	}

	description := fmt.Sprintf("New subscription purchase: %d points", points)
	if reason == ReasonSubscriptionCredit {
		description = fmt.Sprintf("Subscription renewal: %d points", points)
	}
	if _, err := s.points.Credit(ctx, l.UserID, points, reason, sub.ID, description); err != nil {
		return fmt.Errorf("credit subscription points: %w", err)
	}

	meta := &identity.SubscriptionMetadata{
		SubscriptionType:     subType,
		PointsPerCredit:      points,
		StripeSubscriptionID: sub.ID,
		NextPointsCredit:     nextCredit,
	}
	if sub.Customer != nil {
		meta.StripeCustomerID = sub.Customer.ID
	}
	if !periodStart.IsZero() {
		meta.SubscriptionStart = &periodStart
	}
	if !periodEnd.IsZero() {
		meta.SubscriptionEnd = &periodEnd
	}
	if merr := s.metadata.UpdateSubscriptionMetadata(ctx, l.UserID, meta); merr != nil {
		s.logger.Warn("metadata mirror update failed", "user_id", l.UserID, "error", merr)
	}

	s.logger.Info("subscription processed",
		"user_id", l.UserID, "type", subType, "reason", reason, "points", points)
	return nil
}

// subscriptionTerms pulls interval and period bounds from the subscription's
// first item.
func subscriptionTerms(sub *stripe.Subscription) (stripe.PriceRecurringInterval, time.Time, time.Time) {
	var interval stripe.PriceRecurringInterval
	var start, end time.Time

	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		if item.Price != nil && item.Price.Recurring != nil {
			interval = item.Price.Recurring.Interval
		}
		if item.CurrentPeriodStart > 0 {
			start = time.Unix(item.CurrentPeriodStart, 0)
		}
		if item.CurrentPeriodEnd > 0 {
			end = time.Unix(item.CurrentPeriodEnd, 0)
		}
	}
	return interval, start, end
}

func (s *BillingService) ledgerByCustomer(ctx context.Context, sub *stripe.Subscription) (*ent.UserLedger, error) {
	if sub.Customer == nil {
		return nil, fmt.Errorf("missing customer in subscription")
	}
	l, err := s.db.UserLedger.Query().
		Where(entledger.StripeCustomerID(sub.Customer.ID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("find ledger by customer: %w", err)
	}
	return l, nil
}

func (s *BillingService) ledgerByUserID(ctx context.Context, userID string) (*ent.UserLedger, error) {
	l, err := s.db.UserLedger.Query().
		Where(entledger.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	return l, nil
}
