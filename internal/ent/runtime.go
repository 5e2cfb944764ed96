// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avelar/pixelmint/internal/ent/anonymoussession"
	"github.com/avelar/pixelmint/internal/ent/generation"
	"github.com/avelar/pixelmint/internal/ent/pointstransaction"
	"github.com/avelar/pixelmint/internal/ent/schema"
	"github.com/avelar/pixelmint/internal/ent/userledger"
	"github.com/avelar/pixelmint/internal/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	anonymoussessionFields := schema.AnonymousSession{}.Fields()
	_ = anonymoussessionFields
	// anonymoussessionDescToken is the schema descriptor for token field.
	anonymoussessionDescToken := anonymoussessionFields[0].Descriptor()
	// anonymoussession.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	anonymoussession.TokenValidator = anonymoussessionDescToken.Validators[0].(func(string) error)
	// anonymoussessionDescIPAddress is the schema descriptor for ip_address field.
	anonymoussessionDescIPAddress := anonymoussessionFields[1].Descriptor()
	// anonymoussession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	anonymoussession.IPAddressValidator = anonymoussessionDescIPAddress.Validators[0].(func(string) error)
	// anonymoussessionDescPointsRemaining is the schema descriptor for points_remaining field.
	anonymoussessionDescPointsRemaining := anonymoussessionFields[2].Descriptor()
	// anonymoussession.DefaultPointsRemaining holds the default value on creation for the points_remaining field.
	anonymoussession.DefaultPointsRemaining = anonymoussessionDescPointsRemaining.Default.(int)
	// anonymoussession.PointsRemainingValidator is a validator for the "points_remaining" field. It is called by the builders before save.
	anonymoussession.PointsRemainingValidator = anonymoussessionDescPointsRemaining.Validators[0].(func(int) error)
	// anonymoussessionDescStatus is the schema descriptor for status field.
	anonymoussessionDescStatus := anonymoussessionFields[3].Descriptor()
	// anonymoussession.DefaultStatus holds the default value on creation for the status field.
	anonymoussession.DefaultStatus = anonymoussessionDescStatus.Default.(string)
	// anonymoussessionDescCreatedAt is the schema descriptor for created_at field.
	anonymoussessionDescCreatedAt := anonymoussessionFields[6].Descriptor()
	// anonymoussession.DefaultCreatedAt holds the default value on creation for the created_at field.
	anonymoussession.DefaultCreatedAt = anonymoussessionDescCreatedAt.Default.(func() time.Time)
	// anonymoussessionDescLastUsedAt is the schema descriptor for last_used_at field.
	anonymoussessionDescLastUsedAt := anonymoussessionFields[7].Descriptor()
	// anonymoussession.DefaultLastUsedAt holds the default value on creation for the last_used_at field.
	anonymoussession.DefaultLastUsedAt = anonymoussessionDescLastUsedAt.Default.(func() time.Time)
	// anonymoussession.UpdateDefaultLastUsedAt holds the default value on update for the last_used_at field.
	anonymoussession.UpdateDefaultLastUsedAt = anonymoussessionDescLastUsedAt.UpdateDefault.(func() time.Time)
	generationFields := schema.Generation{}.Fields()
	_ = generationFields
	// generationDescJobID is the schema descriptor for job_id field.
	generationDescJobID := generationFields[0].Descriptor()
	// generation.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	generation.JobIDValidator = generationDescJobID.Validators[0].(func(string) error)
	// generationDescPrompt is the schema descriptor for prompt field.
	generationDescPrompt := generationFields[3].Descriptor()
	// generation.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	generation.PromptValidator = generationDescPrompt.Validators[0].(func(string) error)
	// generationDescName is the schema descriptor for name field.
	generationDescName := generationFields[4].Descriptor()
	// generation.DefaultName holds the default value on creation for the name field.
	generation.DefaultName = generationDescName.Default.(string)
	// generationDescStatus is the schema descriptor for status field.
	generationDescStatus := generationFields[5].Descriptor()
	// generation.DefaultStatus holds the default value on creation for the status field.
	generation.DefaultStatus = generationDescStatus.Default.(string)
	// generationDescFavorite is the schema descriptor for favorite field.
	generationDescFavorite := generationFields[10].Descriptor()
	// generation.DefaultFavorite holds the default value on creation for the favorite field.
	generation.DefaultFavorite = generationDescFavorite.Default.(bool)
	// generationDescBatchID is the schema descriptor for batch_id field.
	generationDescBatchID := generationFields[11].Descriptor()
	// generation.DefaultBatchID holds the default value on creation for the batch_id field.
	generation.DefaultBatchID = generationDescBatchID.Default.(string)
	// generationDescCreatedAt is the schema descriptor for created_at field.
	generationDescCreatedAt := generationFields[12].Descriptor()
	// generation.DefaultCreatedAt holds the default value on creation for the created_at field.
	generation.DefaultCreatedAt = generationDescCreatedAt.Default.(func() time.Time)
	// generationDescUpdatedAt is the schema descriptor for updated_at field.
	generationDescUpdatedAt := generationFields[13].Descriptor()
	// generation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	generation.DefaultUpdatedAt = generationDescUpdatedAt.Default.(func() time.Time)
	// generation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	generation.UpdateDefaultUpdatedAt = generationDescUpdatedAt.UpdateDefault.(func() time.Time)
	pointstransactionFields := schema.PointsTransaction{}.Fields()
	_ = pointstransactionFields
	// pointstransactionDescReason is the schema descriptor for reason field.
	pointstransactionDescReason := pointstransactionFields[1].Descriptor()
	// pointstransaction.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	pointstransaction.ReasonValidator = pointstransactionDescReason.Validators[0].(func(string) error)
	// pointstransactionDescExternalRef is the schema descriptor for external_ref field.
	pointstransactionDescExternalRef := pointstransactionFields[2].Descriptor()
	// pointstransaction.DefaultExternalRef holds the default value on creation for the external_ref field.
	pointstransaction.DefaultExternalRef = pointstransactionDescExternalRef.Default.(string)
	// pointstransactionDescDescription is the schema descriptor for description field.
	pointstransactionDescDescription := pointstransactionFields[4].Descriptor()
	// pointstransaction.DefaultDescription holds the default value on creation for the description field.
	pointstransaction.DefaultDescription = pointstransactionDescDescription.Default.(string)
	// pointstransactionDescCreatedAt is the schema descriptor for created_at field.
	pointstransactionDescCreatedAt := pointstransactionFields[5].Descriptor()
	// pointstransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	pointstransaction.DefaultCreatedAt = pointstransactionDescCreatedAt.Default.(func() time.Time)
	userledgerFields := schema.UserLedger{}.Fields()
	_ = userledgerFields
	// userledgerDescUserID is the schema descriptor for user_id field.
	userledgerDescUserID := userledgerFields[0].Descriptor()
	// userledger.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userledger.UserIDValidator = userledgerDescUserID.Validators[0].(func(string) error)
	// userledgerDescPointsRemaining is the schema descriptor for points_remaining field.
	userledgerDescPointsRemaining := userledgerFields[1].Descriptor()
	// userledger.DefaultPointsRemaining holds the default value on creation for the points_remaining field.
	userledger.DefaultPointsRemaining = userledgerDescPointsRemaining.Default.(int)
	// userledger.PointsRemainingValidator is a validator for the "points_remaining" field. It is called by the builders before save.
	userledger.PointsRemainingValidator = userledgerDescPointsRemaining.Validators[0].(func(int) error)
	// userledgerDescTotalPointsEarned is the schema descriptor for total_points_earned field.
	userledgerDescTotalPointsEarned := userledgerFields[2].Descriptor()
	// userledger.DefaultTotalPointsEarned holds the default value on creation for the total_points_earned field.
	userledger.DefaultTotalPointsEarned = userledgerDescTotalPointsEarned.Default.(int)
	// userledger.TotalPointsEarnedValidator is a validator for the "total_points_earned" field. It is called by the builders before save.
	userledger.TotalPointsEarnedValidator = userledgerDescTotalPointsEarned.Validators[0].(func(int) error)
	// userledgerDescSubscriptionStatus is the schema descriptor for subscription_status field.
	userledgerDescSubscriptionStatus := userledgerFields[6].Descriptor()
	// userledger.DefaultSubscriptionStatus holds the default value on creation for the subscription_status field.
	userledger.DefaultSubscriptionStatus = userledgerDescSubscriptionStatus.Default.(string)
	// userledgerDescSubscriptionType is the schema descriptor for subscription_type field.
	userledgerDescSubscriptionType := userledgerFields[7].Descriptor()
	// userledger.DefaultSubscriptionType holds the default value on creation for the subscription_type field.
	userledger.DefaultSubscriptionType = userledgerDescSubscriptionType.Default.(string)
	// userledgerDescCancelAtPeriodEnd is the schema descriptor for cancel_at_period_end field.
	userledgerDescCancelAtPeriodEnd := userledgerFields[10].Descriptor()
	// userledger.DefaultCancelAtPeriodEnd holds the default value on creation for the cancel_at_period_end field.
	userledger.DefaultCancelAtPeriodEnd = userledgerDescCancelAtPeriodEnd.Default.(bool)
	// userledgerDescCreatedAt is the schema descriptor for created_at field.
	userledgerDescCreatedAt := userledgerFields[12].Descriptor()
	// userledger.DefaultCreatedAt holds the default value on creation for the created_at field.
	userledger.DefaultCreatedAt = userledgerDescCreatedAt.Default.(func() time.Time)
	// userledgerDescUpdatedAt is the schema descriptor for updated_at field.
	userledgerDescUpdatedAt := userledgerFields[13].Descriptor()
	// userledger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userledger.DefaultUpdatedAt = userledgerDescUpdatedAt.Default.(func() time.Time)
	// userledger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userledger.UpdateDefaultUpdatedAt = userledgerDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescProvider is the schema descriptor for provider field.
	webhookeventDescProvider := webhookeventFields[0].Descriptor()
	// webhookevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	webhookevent.ProviderValidator = webhookeventDescProvider.Validators[0].(func(string) error)
	// webhookeventDescEventID is the schema descriptor for event_id field.
	webhookeventDescEventID := webhookeventFields[1].Descriptor()
	// webhookevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	webhookevent.EventIDValidator = webhookeventDescEventID.Validators[0].(func(string) error)
	// webhookeventDescEventType is the schema descriptor for event_type field.
	webhookeventDescEventType := webhookeventFields[2].Descriptor()
	// webhookevent.DefaultEventType holds the default value on creation for the event_type field.
	webhookevent.DefaultEventType = webhookeventDescEventType.Default.(string)
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[3].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
}
