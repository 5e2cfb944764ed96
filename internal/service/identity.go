package service

import (
	"errors"
	"fmt"
)

// Identity is the resolved caller: either an authenticated user (UserID set)
// or an anonymous session (SessionID/SessionToken set). Never both.
type Identity struct {
	UserID       string
	SessionID    int
	SessionToken string
}

// IsUser reports whether the identity is an authenticated user.
func (i Identity) IsUser() bool { return i.UserID != "" }

// User returns an authenticated identity.
func User(userID string) Identity { return Identity{UserID: userID} }

// Anonymous returns an anonymous-session identity.
func Anonymous(sessionID int, token string) Identity {
	return Identity{SessionID: sessionID, SessionToken: token}
}

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMustReauthenticate indicates the anonymous session was already
	// converted to a user account; its balance lives there now and the
	// caller has to sign back in rather than spend from the session.
	ErrMustReauthenticate = errors.New("session converted, login required")

	// ErrInvalidIdentity indicates neither a user nor a session was resolved.
	ErrInvalidIdentity = errors.New("either a user or a session identity is required")

	// ErrForbidden indicates the caller does not own the record.
	ErrForbidden = errors.New("not the owner")
)

// InsufficientPointsError is returned when a deduction or authorization fails
// on balance. Balance carries the current value so the caller can render an
// actionable message.
type InsufficientPointsError struct {
	Balance  int
	Required int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: have %d, need %d", e.Balance, e.Required)
}

// IsInsufficientPoints reports whether err is an InsufficientPointsError.
func IsInsufficientPoints(err error) (*InsufficientPointsError, bool) {
	var ipe *InsufficientPointsError
	if errors.As(err, &ipe) {
		return ipe, true
	}
	return nil, false
}
