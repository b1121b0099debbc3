package session

import (
	"context"
	"errors"
	"testing"

	"poll-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway drives a bridge by hand
type fakeGateway struct {
	user       *models.UserProfile
	session    *models.Session
	userErr    error
	logoutErr  error
	logoutCnt  int
	listeners  map[int]func(models.AuthEvent)
	nextID     int
	unsubCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{listeners: make(map[int]func(models.AuthEvent))}
}

func (f *fakeGateway) CurrentUser(ctx context.Context, token string) (*models.UserProfile, error) {
	return f.user, f.userErr
}

func (f *fakeGateway) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeGateway) Logout(ctx context.Context, token string) error {
	f.logoutCnt++
	return f.logoutErr
}

func (f *fakeGateway) OnAuthStateChange(listener func(models.AuthEvent)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = listener
	return func() {
		f.unsubCalls++
		delete(f.listeners, id)
	}
}

func (f *fakeGateway) fire(event models.AuthEvent) {
	for _, l := range f.listeners {
		l(event)
	}
}

func TestNewBridgeSignedOutState(t *testing.T) {
	gw := newFakeGateway()

	b := NewBridge(context.Background(), gw, "")
	defer b.Close()

	state := b.Snapshot()
	assert.Nil(t, state.User)
	assert.Nil(t, state.Session)
	assert.False(t, state.Loading, "loading must clear after the eager fetch")
	assert.Empty(t, state.Err)
	assert.Len(t, gw.listeners, 1, "bridge must subscribe for its lifetime")
}

func TestNewBridgeEagerFetch(t *testing.T) {
	gw := newFakeGateway()
	gw.user = &models.UserProfile{ID: "u1", Email: "a@b.com", Name: "Jo"}
	gw.session = &models.Session{UserID: "u1", AccessToken: "tok"}

	b := NewBridge(context.Background(), gw, "tok")
	defer b.Close()

	state := b.Snapshot()
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	require.NotNil(t, state.Session)
	assert.Equal(t, "tok", state.Session.AccessToken)
	assert.False(t, state.Loading)
}

func TestNewBridgeFetchFailureStillClearsLoading(t *testing.T) {
	gw := newFakeGateway()
	gw.userErr = errors.New("Authentication failed.")

	b := NewBridge(context.Background(), gw, "tok")
	defer b.Close()

	state := b.Snapshot()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
	assert.Equal(t, "Authentication failed.", state.Err)
}

func TestBridgeFollowsAuthNotifications(t *testing.T) {
	gw := newFakeGateway()
	b := NewBridge(context.Background(), gw, "")
	defer b.Close()

	gw.fire(models.AuthEvent{
		Type:    models.AuthSignedIn,
		User:    &models.UserProfile{ID: "u1", Email: "a@b.com", Name: "Jo"},
		Session: &models.Session{UserID: "u1", AccessToken: "tok"},
	})

	state := b.Snapshot()
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	require.NotNil(t, state.Session)

	gw.fire(models.AuthEvent{Type: models.AuthSignedOut})

	state = b.Snapshot()
	assert.Nil(t, state.User)
	assert.Nil(t, state.Session)
}

func TestSignOutClearsOptimistically(t *testing.T) {
	gw := newFakeGateway()
	// Logout fails, and no sign-out notification will ever arrive; local
	// state must clear anyway.
	gw.logoutErr = errors.New("Logout failed.")
	gw.user = &models.UserProfile{ID: "u1"}
	gw.session = &models.Session{UserID: "u1", AccessToken: "tok"}

	b := NewBridge(context.Background(), gw, "tok")
	defer b.Close()

	err := b.SignOut(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, gw.logoutCnt)

	state := b.Snapshot()
	assert.Nil(t, state.User)
	assert.Nil(t, state.Session)
	assert.Equal(t, "Logout failed.", state.Err)
}

func TestSignOutClearsEarlierError(t *testing.T) {
	gw := newFakeGateway()
	// The eager fetch fails, leaving an error on the snapshot.
	gw.userErr = errors.New("Authentication failed.")

	b := NewBridge(context.Background(), gw, "tok")
	defer b.Close()
	require.Equal(t, "Authentication failed.", b.Snapshot().Err)

	require.NoError(t, b.SignOut(context.Background()))

	state := b.Snapshot()
	assert.Nil(t, state.User)
	assert.Nil(t, state.Session)
	assert.Empty(t, state.Err, "a clean sign-out must not keep an old error")
}

func TestCloseReleasesSubscription(t *testing.T) {
	gw := newFakeGateway()
	b := NewBridge(context.Background(), gw, "")

	b.Close()
	assert.Empty(t, gw.listeners)
	assert.Equal(t, 1, gw.unsubCalls)

	// Idempotent.
	b.Close()
	assert.Equal(t, 1, gw.unsubCalls)

	// Events after Close must not touch the bridge.
	gw.fire(models.AuthEvent{Type: models.AuthSignedIn, User: &models.UserProfile{ID: "u1"}})
	assert.Nil(t, b.Snapshot().User)
}
