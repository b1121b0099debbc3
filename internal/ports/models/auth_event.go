package models

// AuthEventType identifies an authentication state transition.
type AuthEventType string

const (
	AuthSignedIn  AuthEventType = "SIGNED_IN"
	AuthSignedOut AuthEventType = "SIGNED_OUT"
)

// AuthEvent is delivered to auth-state listeners. User and Session carry the
// reduced projections on sign-in and are nil on sign-out.
type AuthEvent struct {
	Type    AuthEventType
	User    *UserProfile
	Session *Session
}
