// Code generated by ent, DO NOT EDIT.

package userledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avelar/pixelmint/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldUserID, v))
}

// PointsRemaining applies equality check predicate on the "points_remaining" field. It's identical to PointsRemainingEQ.
func PointsRemaining(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldPointsRemaining, v))
}

// TotalPointsEarned applies equality check predicate on the "total_points_earned" field. It's identical to TotalPointsEarnedEQ.
func TotalPointsEarned(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldTotalPointsEarned, v))
}

// LastBonusAt applies equality check predicate on the "last_bonus_at" field. It's identical to LastBonusAtEQ.
func LastBonusAt(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldLastBonusAt, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeSubscriptionID applies equality check predicate on the "stripe_subscription_id" field. It's identical to StripeSubscriptionIDEQ.
func StripeSubscriptionID(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// SubscriptionStatus applies equality check predicate on the "subscription_status" field. It's identical to SubscriptionStatusEQ.
func SubscriptionStatus(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionStatus, v))
}

// SubscriptionType applies equality check predicate on the "subscription_type" field. It's identical to SubscriptionTypeEQ.
func SubscriptionType(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionType, v))
}

// SubscriptionPeriodEnd applies equality check predicate on the "subscription_period_end" field. It's identical to SubscriptionPeriodEndEQ.
func SubscriptionPeriodEnd(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionPeriodEnd, v))
}

// NextPointsCredit applies equality check predicate on the "next_points_credit" field. It's identical to NextPointsCreditEQ.
func NextPointsCredit(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldNextPointsCredit, v))
}

// CancelAtPeriodEnd applies equality check predicate on the "cancel_at_period_end" field. It's identical to CancelAtPeriodEndEQ.
func CancelAtPeriodEnd(v bool) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldCancelAtPeriodEnd, v))
}

// SubscriptionUpdatedAt applies equality check predicate on the "subscription_updated_at" field. It's identical to SubscriptionUpdatedAtEQ.
func SubscriptionUpdatedAt(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionUpdatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContainsFold(FieldUserID, v))
}

// PointsRemainingEQ applies the EQ predicate on the "points_remaining" field.
func PointsRemainingEQ(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldPointsRemaining, v))
}

// PointsRemainingNEQ applies the NEQ predicate on the "points_remaining" field.
func PointsRemainingNEQ(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldPointsRemaining, v))
}

// PointsRemainingIn applies the In predicate on the "points_remaining" field.
func PointsRemainingIn(vs ...int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldPointsRemaining, vs...))
}

// PointsRemainingNotIn applies the NotIn predicate on the "points_remaining" field.
func PointsRemainingNotIn(vs ...int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldPointsRemaining, vs...))
}

// PointsRemainingGT applies the GT predicate on the "points_remaining" field.
func PointsRemainingGT(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldPointsRemaining, v))
}

// PointsRemainingGTE applies the GTE predicate on the "points_remaining" field.
func PointsRemainingGTE(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldPointsRemaining, v))
}

// PointsRemainingLT applies the LT predicate on the "points_remaining" field.
func PointsRemainingLT(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldPointsRemaining, v))
}

// PointsRemainingLTE applies the LTE predicate on the "points_remaining" field.
func PointsRemainingLTE(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldPointsRemaining, v))
}

// TotalPointsEarnedEQ applies the EQ predicate on the "total_points_earned" field.
func TotalPointsEarnedEQ(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedNEQ applies the NEQ predicate on the "total_points_earned" field.
func TotalPointsEarnedNEQ(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedIn applies the In predicate on the "total_points_earned" field.
func TotalPointsEarnedIn(vs ...int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldTotalPointsEarned, vs...))
}

// TotalPointsEarnedNotIn applies the NotIn predicate on the "total_points_earned" field.
func TotalPointsEarnedNotIn(vs ...int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldTotalPointsEarned, vs...))
}

// TotalPointsEarnedGT applies the GT predicate on the "total_points_earned" field.
func TotalPointsEarnedGT(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedGTE applies the GTE predicate on the "total_points_earned" field.
func TotalPointsEarnedGTE(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedLT applies the LT predicate on the "total_points_earned" field.
func TotalPointsEarnedLT(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedLTE applies the LTE predicate on the "total_points_earned" field.
func TotalPointsEarnedLTE(v int) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldTotalPointsEarned, v))
}

// LastBonusAtEQ applies the EQ predicate on the "last_bonus_at" field.
func LastBonusAtEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldLastBonusAt, v))
}

// LastBonusAtNEQ applies the NEQ predicate on the "last_bonus_at" field.
func LastBonusAtNEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldLastBonusAt, v))
}

// LastBonusAtIn applies the In predicate on the "last_bonus_at" field.
func LastBonusAtIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldLastBonusAt, vs...))
}

// LastBonusAtNotIn applies the NotIn predicate on the "last_bonus_at" field.
func LastBonusAtNotIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldLastBonusAt, vs...))
}

// LastBonusAtGT applies the GT predicate on the "last_bonus_at" field.
func LastBonusAtGT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldLastBonusAt, v))
}

// LastBonusAtGTE applies the GTE predicate on the "last_bonus_at" field.
func LastBonusAtGTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldLastBonusAt, v))
}

// LastBonusAtLT applies the LT predicate on the "last_bonus_at" field.
func LastBonusAtLT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldLastBonusAt, v))
}

// LastBonusAtLTE applies the LTE predicate on the "last_bonus_at" field.
func LastBonusAtLTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldLastBonusAt, v))
}

// LastBonusAtIsNil applies the IsNil predicate on the "last_bonus_at" field.
func LastBonusAtIsNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIsNull(FieldLastBonusAt))
}

// LastBonusAtNotNil applies the NotNil predicate on the "last_bonus_at" field.
func LastBonusAtNotNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotNull(FieldLastBonusAt))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// StripeSubscriptionIDEQ applies the EQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDNEQ applies the NEQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIn applies the In predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDNotIn applies the NotIn predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDGT applies the GT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDGTE applies the GTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLT applies the LT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLTE applies the LTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContains applies the Contains predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContains(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContains(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasPrefix applies the HasPrefix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasPrefix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasPrefix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasSuffix applies the HasSuffix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasSuffix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasSuffix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIsNil applies the IsNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIsNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIsNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDNotNil applies the NotNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDEqualFold applies the EqualFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEqualFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEqualFold(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContainsFold applies the ContainsFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContainsFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContainsFold(FieldStripeSubscriptionID, v))
}

// SubscriptionStatusEQ applies the EQ predicate on the "subscription_status" field.
func SubscriptionStatusEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionStatus, v))
}

// SubscriptionStatusNEQ applies the NEQ predicate on the "subscription_status" field.
func SubscriptionStatusNEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldSubscriptionStatus, v))
}

// SubscriptionStatusIn applies the In predicate on the "subscription_status" field.
func SubscriptionStatusIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldSubscriptionStatus, vs...))
}

// SubscriptionStatusNotIn applies the NotIn predicate on the "subscription_status" field.
func SubscriptionStatusNotIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldSubscriptionStatus, vs...))
}

// SubscriptionStatusGT applies the GT predicate on the "subscription_status" field.
func SubscriptionStatusGT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldSubscriptionStatus, v))
}

// SubscriptionStatusGTE applies the GTE predicate on the "subscription_status" field.
func SubscriptionStatusGTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldSubscriptionStatus, v))
}

// SubscriptionStatusLT applies the LT predicate on the "subscription_status" field.
func SubscriptionStatusLT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldSubscriptionStatus, v))
}

// SubscriptionStatusLTE applies the LTE predicate on the "subscription_status" field.
func SubscriptionStatusLTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldSubscriptionStatus, v))
}

// SubscriptionStatusContains applies the Contains predicate on the "subscription_status" field.
func SubscriptionStatusContains(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContains(FieldSubscriptionStatus, v))
}

// SubscriptionStatusHasPrefix applies the HasPrefix predicate on the "subscription_status" field.
func SubscriptionStatusHasPrefix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasPrefix(FieldSubscriptionStatus, v))
}

// SubscriptionStatusHasSuffix applies the HasSuffix predicate on the "subscription_status" field.
func SubscriptionStatusHasSuffix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasSuffix(FieldSubscriptionStatus, v))
}

// SubscriptionStatusEqualFold applies the EqualFold predicate on the "subscription_status" field.
func SubscriptionStatusEqualFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEqualFold(FieldSubscriptionStatus, v))
}

// SubscriptionStatusContainsFold applies the ContainsFold predicate on the "subscription_status" field.
func SubscriptionStatusContainsFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContainsFold(FieldSubscriptionStatus, v))
}

// SubscriptionTypeEQ applies the EQ predicate on the "subscription_type" field.
func SubscriptionTypeEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionType, v))
}

// SubscriptionTypeNEQ applies the NEQ predicate on the "subscription_type" field.
func SubscriptionTypeNEQ(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldSubscriptionType, v))
}

// SubscriptionTypeIn applies the In predicate on the "subscription_type" field.
func SubscriptionTypeIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldSubscriptionType, vs...))
}

// SubscriptionTypeNotIn applies the NotIn predicate on the "subscription_type" field.
func SubscriptionTypeNotIn(vs ...string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldSubscriptionType, vs...))
}

// SubscriptionTypeGT applies the GT predicate on the "subscription_type" field.
func SubscriptionTypeGT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldSubscriptionType, v))
}

// SubscriptionTypeGTE applies the GTE predicate on the "subscription_type" field.
func SubscriptionTypeGTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldSubscriptionType, v))
}

// SubscriptionTypeLT applies the LT predicate on the "subscription_type" field.
func SubscriptionTypeLT(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldSubscriptionType, v))
}

// SubscriptionTypeLTE applies the LTE predicate on the "subscription_type" field.
func SubscriptionTypeLTE(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldSubscriptionType, v))
}

// SubscriptionTypeContains applies the Contains predicate on the "subscription_type" field.
func SubscriptionTypeContains(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContains(FieldSubscriptionType, v))
}

// SubscriptionTypeHasPrefix applies the HasPrefix predicate on the "subscription_type" field.
func SubscriptionTypeHasPrefix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasPrefix(FieldSubscriptionType, v))
}

// SubscriptionTypeHasSuffix applies the HasSuffix predicate on the "subscription_type" field.
func SubscriptionTypeHasSuffix(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldHasSuffix(FieldSubscriptionType, v))
}

// SubscriptionTypeIsNil applies the IsNil predicate on the "subscription_type" field.
func SubscriptionTypeIsNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIsNull(FieldSubscriptionType))
}

// SubscriptionTypeNotNil applies the NotNil predicate on the "subscription_type" field.
func SubscriptionTypeNotNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotNull(FieldSubscriptionType))
}

// SubscriptionTypeEqualFold applies the EqualFold predicate on the "subscription_type" field.
func SubscriptionTypeEqualFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEqualFold(FieldSubscriptionType, v))
}

// SubscriptionTypeContainsFold applies the ContainsFold predicate on the "subscription_type" field.
func SubscriptionTypeContainsFold(v string) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldContainsFold(FieldSubscriptionType, v))
}

// SubscriptionPeriodEndEQ applies the EQ predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionPeriodEnd, v))
}

// SubscriptionPeriodEndNEQ applies the NEQ predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndNEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldSubscriptionPeriodEnd, v))
}

// SubscriptionPeriodEndIn applies the In predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldSubscriptionPeriodEnd, vs...))
}

// SubscriptionPeriodEndNotIn applies the NotIn predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndNotIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldSubscriptionPeriodEnd, vs...))
}

// SubscriptionPeriodEndGT applies the GT predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndGT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldSubscriptionPeriodEnd, v))
}

// SubscriptionPeriodEndGTE applies the GTE predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndGTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldSubscriptionPeriodEnd, v))
}

// SubscriptionPeriodEndLT applies the LT predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndLT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldSubscriptionPeriodEnd, v))
}

// SubscriptionPeriodEndLTE applies the LTE predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndLTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldSubscriptionPeriodEnd, v))
}

// SubscriptionPeriodEndIsNil applies the IsNil predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndIsNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIsNull(FieldSubscriptionPeriodEnd))
}

// SubscriptionPeriodEndNotNil applies the NotNil predicate on the "subscription_period_end" field.
func SubscriptionPeriodEndNotNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotNull(FieldSubscriptionPeriodEnd))
}

// NextPointsCreditEQ applies the EQ predicate on the "next_points_credit" field.
func NextPointsCreditEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldNextPointsCredit, v))
}

// NextPointsCreditNEQ applies the NEQ predicate on the "next_points_credit" field.
func NextPointsCreditNEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldNextPointsCredit, v))
}

// NextPointsCreditIn applies the In predicate on the "next_points_credit" field.
func NextPointsCreditIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldNextPointsCredit, vs...))
}

// NextPointsCreditNotIn applies the NotIn predicate on the "next_points_credit" field.
func NextPointsCreditNotIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldNextPointsCredit, vs...))
}

// NextPointsCreditGT applies the GT predicate on the "next_points_credit" field.
func NextPointsCreditGT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldNextPointsCredit, v))
}

// NextPointsCreditGTE applies the GTE predicate on the "next_points_credit" field.
func NextPointsCreditGTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldNextPointsCredit, v))
}

// NextPointsCreditLT applies the LT predicate on the "next_points_credit" field.
func NextPointsCreditLT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldNextPointsCredit, v))
}

// NextPointsCreditLTE applies the LTE predicate on the "next_points_credit" field.
func NextPointsCreditLTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldNextPointsCredit, v))
}

// NextPointsCreditIsNil applies the IsNil predicate on the "next_points_credit" field.
func NextPointsCreditIsNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIsNull(FieldNextPointsCredit))
}

// NextPointsCreditNotNil applies the NotNil predicate on the "next_points_credit" field.
func NextPointsCreditNotNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotNull(FieldNextPointsCredit))
}

// CancelAtPeriodEndEQ applies the EQ predicate on the "cancel_at_period_end" field.
func CancelAtPeriodEndEQ(v bool) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldCancelAtPeriodEnd, v))
}

// CancelAtPeriodEndNEQ applies the NEQ predicate on the "cancel_at_period_end" field.
func CancelAtPeriodEndNEQ(v bool) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldCancelAtPeriodEnd, v))
}

// SubscriptionUpdatedAtEQ applies the EQ predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldSubscriptionUpdatedAt, v))
}

// SubscriptionUpdatedAtNEQ applies the NEQ predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtNEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldSubscriptionUpdatedAt, v))
}

// SubscriptionUpdatedAtIn applies the In predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldSubscriptionUpdatedAt, vs...))
}

// SubscriptionUpdatedAtNotIn applies the NotIn predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtNotIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldSubscriptionUpdatedAt, vs...))
}

// SubscriptionUpdatedAtGT applies the GT predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtGT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldSubscriptionUpdatedAt, v))
}

// SubscriptionUpdatedAtGTE applies the GTE predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtGTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldSubscriptionUpdatedAt, v))
}

// SubscriptionUpdatedAtLT applies the LT predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtLT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldSubscriptionUpdatedAt, v))
}

// SubscriptionUpdatedAtLTE applies the LTE predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtLTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldSubscriptionUpdatedAt, v))
}

// SubscriptionUpdatedAtIsNil applies the IsNil predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtIsNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIsNull(FieldSubscriptionUpdatedAt))
}

// SubscriptionUpdatedAtNotNil applies the NotNil predicate on the "subscription_updated_at" field.
func SubscriptionUpdatedAtNotNil() predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotNull(FieldSubscriptionUpdatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserLedger {
	return predicate.UserLedger(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.UserLedger {
	return predicate.UserLedger(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.PointsTransaction) predicate.UserLedger {
	return predicate.UserLedger(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserLedger) predicate.UserLedger {
	return predicate.UserLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserLedger) predicate.UserLedger {
	return predicate.UserLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserLedger) predicate.UserLedger {
	return predicate.UserLedger(sql.NotPredicates(p))
}
