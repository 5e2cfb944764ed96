// Code generated by ent, DO NOT EDIT.

package anonymoussession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avelar/pixelmint/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldID, id))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldToken, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldIPAddress, v))
}

// PointsRemaining applies equality check predicate on the "points_remaining" field. It's identical to PointsRemainingEQ.
func PointsRemaining(v int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldPointsRemaining, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldStatus, v))
}

// ConvertedUserID applies equality check predicate on the "converted_user_id" field. It's identical to ConvertedUserIDEQ.
func ConvertedUserID(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldConvertedUserID, v))
}

// LastBonusAt applies equality check predicate on the "last_bonus_at" field. It's identical to LastBonusAtEQ.
func LastBonusAt(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldLastBonusAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldCreatedAt, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldLastUsedAt, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContainsFold(FieldToken, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContainsFold(FieldIPAddress, v))
}

// PointsRemainingEQ applies the EQ predicate on the "points_remaining" field.
func PointsRemainingEQ(v int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldPointsRemaining, v))
}

// PointsRemainingNEQ applies the NEQ predicate on the "points_remaining" field.
func PointsRemainingNEQ(v int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldPointsRemaining, v))
}

// PointsRemainingIn applies the In predicate on the "points_remaining" field.
func PointsRemainingIn(vs ...int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldPointsRemaining, vs...))
}

// PointsRemainingNotIn applies the NotIn predicate on the "points_remaining" field.
func PointsRemainingNotIn(vs ...int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldPointsRemaining, vs...))
}

// PointsRemainingGT applies the GT predicate on the "points_remaining" field.
func PointsRemainingGT(v int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldPointsRemaining, v))
}

// PointsRemainingGTE applies the GTE predicate on the "points_remaining" field.
func PointsRemainingGTE(v int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldPointsRemaining, v))
}

// PointsRemainingLT applies the LT predicate on the "points_remaining" field.
func PointsRemainingLT(v int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldPointsRemaining, v))
}

// PointsRemainingLTE applies the LTE predicate on the "points_remaining" field.
func PointsRemainingLTE(v int) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldPointsRemaining, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContainsFold(FieldStatus, v))
}

// ConvertedUserIDEQ applies the EQ predicate on the "converted_user_id" field.
func ConvertedUserIDEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldConvertedUserID, v))
}

// ConvertedUserIDNEQ applies the NEQ predicate on the "converted_user_id" field.
func ConvertedUserIDNEQ(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldConvertedUserID, v))
}

// ConvertedUserIDIn applies the In predicate on the "converted_user_id" field.
func ConvertedUserIDIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldConvertedUserID, vs...))
}

// ConvertedUserIDNotIn applies the NotIn predicate on the "converted_user_id" field.
func ConvertedUserIDNotIn(vs ...string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldConvertedUserID, vs...))
}

// ConvertedUserIDGT applies the GT predicate on the "converted_user_id" field.
func ConvertedUserIDGT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldConvertedUserID, v))
}

// ConvertedUserIDGTE applies the GTE predicate on the "converted_user_id" field.
func ConvertedUserIDGTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldConvertedUserID, v))
}

// ConvertedUserIDLT applies the LT predicate on the "converted_user_id" field.
func ConvertedUserIDLT(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldConvertedUserID, v))
}

// ConvertedUserIDLTE applies the LTE predicate on the "converted_user_id" field.
func ConvertedUserIDLTE(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldConvertedUserID, v))
}

// ConvertedUserIDContains applies the Contains predicate on the "converted_user_id" field.
func ConvertedUserIDContains(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContains(FieldConvertedUserID, v))
}

// ConvertedUserIDHasPrefix applies the HasPrefix predicate on the "converted_user_id" field.
func ConvertedUserIDHasPrefix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasPrefix(FieldConvertedUserID, v))
}

// ConvertedUserIDHasSuffix applies the HasSuffix predicate on the "converted_user_id" field.
func ConvertedUserIDHasSuffix(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldHasSuffix(FieldConvertedUserID, v))
}

// ConvertedUserIDIsNil applies the IsNil predicate on the "converted_user_id" field.
func ConvertedUserIDIsNil() predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIsNull(FieldConvertedUserID))
}

// ConvertedUserIDNotNil applies the NotNil predicate on the "converted_user_id" field.
func ConvertedUserIDNotNil() predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotNull(FieldConvertedUserID))
}

// ConvertedUserIDEqualFold applies the EqualFold predicate on the "converted_user_id" field.
func ConvertedUserIDEqualFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEqualFold(FieldConvertedUserID, v))
}

// ConvertedUserIDContainsFold applies the ContainsFold predicate on the "converted_user_id" field.
func ConvertedUserIDContainsFold(v string) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldContainsFold(FieldConvertedUserID, v))
}

// LastBonusAtEQ applies the EQ predicate on the "last_bonus_at" field.
func LastBonusAtEQ(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldLastBonusAt, v))
}

// LastBonusAtNEQ applies the NEQ predicate on the "last_bonus_at" field.
func LastBonusAtNEQ(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldLastBonusAt, v))
}

// LastBonusAtIn applies the In predicate on the "last_bonus_at" field.
func LastBonusAtIn(vs ...time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldLastBonusAt, vs...))
}

// LastBonusAtNotIn applies the NotIn predicate on the "last_bonus_at" field.
func LastBonusAtNotIn(vs ...time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldLastBonusAt, vs...))
}

// LastBonusAtGT applies the GT predicate on the "last_bonus_at" field.
func LastBonusAtGT(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldLastBonusAt, v))
}

// LastBonusAtGTE applies the GTE predicate on the "last_bonus_at" field.
func LastBonusAtGTE(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldLastBonusAt, v))
}

// LastBonusAtLT applies the LT predicate on the "last_bonus_at" field.
func LastBonusAtLT(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldLastBonusAt, v))
}

// LastBonusAtLTE applies the LTE predicate on the "last_bonus_at" field.
func LastBonusAtLTE(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldLastBonusAt, v))
}

// LastBonusAtIsNil applies the IsNil predicate on the "last_bonus_at" field.
func LastBonusAtIsNil() predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIsNull(FieldLastBonusAt))
}

// LastBonusAtNotNil applies the NotNil predicate on the "last_bonus_at" field.
func LastBonusAtNotNil() predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotNull(FieldLastBonusAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldCreatedAt, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.FieldLTE(FieldLastUsedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnonymousSession) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnonymousSession) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnonymousSession) predicate.AnonymousSession {
	return predicate.AnonymousSession(sql.NotPredicates(p))
}
