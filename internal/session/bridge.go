// Package session holds the client-facing view of the caller's auth state.
// A Bridge observes the auth gateway's state-change notifications and keeps
// a reduced user/session snapshot for the rest of the application; it is an
// explicit, injectable object, never package-level state.
package session

import (
	"context"
	"sync"

	"poll-service/internal/ports/models"
)

// Gateway is the slice of the auth service a bridge needs.
type Gateway interface {
	CurrentUser(ctx context.Context, token string) (*models.UserProfile, error)
	CurrentSession(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
	OnAuthStateChange(listener func(models.AuthEvent)) func()
}

// State is one snapshot of the bridge.
type State struct {
	User    *models.UserProfile
	Session *models.Session
	Loading bool
	Err     string
}

// Bridge republishes the gateway's auth-state notifications as a snapshot.
// Listener delivery happens on whatever goroutine triggered the transition;
// the mutex only protects snapshot reads from other goroutines.
type Bridge struct {
	gw    Gateway
	token string

	mu          sync.Mutex
	state       State
	unsubscribe func()
}

// NewBridge eagerly resolves the current user once, clears the loading flag
// regardless of outcome, and subscribes to auth-state changes until Close.
func NewBridge(ctx context.Context, gw Gateway, token string) *Bridge {
	b := &Bridge{
		gw:    gw,
		token: token,
		state: State{Loading: true},
	}

	user, err := gw.CurrentUser(ctx, token)
	if err != nil {
		b.state.Err = err.Error()
	} else if user != nil {
		b.state.User = user
		if sess, sessErr := gw.CurrentSession(ctx, token); sessErr == nil {
			b.state.Session = sess
		}
	}
	b.state.Loading = false

	b.unsubscribe = gw.OnAuthStateChange(b.onAuthEvent)
	return b
}

func (b *Bridge) onAuthEvent(event models.AuthEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch event.Type {
	case models.AuthSignedIn:
		b.state.User = event.User
		b.state.Session = event.Session
		b.state.Err = ""
		if event.Session != nil {
			b.token = event.Session.AccessToken
		}
	case models.AuthSignedOut:
		b.state.User = nil
		b.state.Session = nil
	}
}

// Snapshot returns the current state.
func (b *Bridge) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SignOut logs out through the gateway and clears local state immediately,
// without waiting for the sign-out notification to arrive.
func (b *Bridge) SignOut(ctx context.Context) error {
	err := b.gw.Logout(ctx, b.token)

	b.mu.Lock()
	b.state.User = nil
	b.state.Session = nil
	if err != nil {
		b.state.Err = err.Error()
	} else {
		b.state.Err = ""
	}
	b.mu.Unlock()

	return err
}

// Close releases the auth-state subscription. Safe to call more than once.
func (b *Bridge) Close() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
