// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnonymousSession is the predicate function for anonymoussession builders.
type AnonymousSession func(*sql.Selector)

// Generation is the predicate function for generation builders.
type Generation func(*sql.Selector)

// PointsTransaction is the predicate function for pointstransaction builders.
type PointsTransaction func(*sql.Selector)

// UserLedger is the predicate function for userledger builders.
type UserLedger func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
