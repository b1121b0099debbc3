package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"poll-service/internal/ports/models"
	"poll-service/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Fixed user-facing messages. Backend causes are logged, never forwarded, so
// a failed login looks the same whether the account exists or not.
const (
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgWeakPassword   = "Password does not meet security requirements."
	MsgInvalidName    = "Please enter a valid name."
	MsgAuthFailed     = "Authentication failed."
	MsgRegisterFailed = "Registration failed."
	MsgLogoutFailed   = "Logout failed."
)

// UserStore is the account half of the data backend.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// SessionStore is the session half of the data backend.
type SessionStore interface {
	SaveSession(ctx context.Context, token, userID string) error
	UserIDByToken(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

// AuthService wraps the backend's authentication surface. Every failure is
// normalized to a generic message and auth-state transitions are pushed to
// registered listeners on the calling goroutine.
type AuthService struct {
	users     UserStore
	sessions  SessionStore
	jwtSecret string
	jwtExpire time.Duration

	mu           sync.Mutex
	nextListener int
	listeners    map[int]func(models.AuthEvent)
}

func NewAuthService(users UserStore, sessions SessionStore, secret string, expire time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: secret,
		jwtExpire: expire,
		listeners: make(map[int]func(models.AuthEvent)),
	}
}

// Register creates an account. All three fields are validated locally before
// the backend is contacted; the display name is stored on the account row.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserProfile, error) {
	if !validation.Email(req.Email) {
		return nil, models.NewValidationError(MsgInvalidEmail)
	}
	if !validation.PasswordStrength(req.Password) {
		return nil, models.NewValidationError(MsgWeakPassword)
	}
	if !validation.Name(req.Name) {
		return nil, models.NewValidationError(MsgInvalidName)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("password hash failed", "error", err)
		return nil, models.NewBackendError(MsgRegisterFailed)
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashedPassword),
	}

	// Duplicate email surfaces the same generic message as any other
	// backend failure.
	if err := s.users.CreateUser(ctx, user); err != nil {
		slog.Warn("user create failed", "error", err)
		return nil, models.NewBackendError(MsgRegisterFailed)
	}

	return user.Profile(), nil
}

// Login checks credentials and opens a session. Wrong password and unknown
// account are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	if !validation.Email(req.Email) {
		return nil, models.NewValidationError(MsgInvalidEmail)
	}
	if !validation.PasswordStrength(req.Password) {
		return nil, models.NewValidationError(MsgWeakPassword)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		slog.Warn("login lookup failed", "error", err)
		return nil, models.NewAuthRequiredError(MsgAuthFailed)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.NewAuthRequiredError(MsgAuthFailed)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.jwtExpire).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		slog.Error("token signing failed", "error", err)
		return nil, models.NewAuthRequiredError(MsgAuthFailed)
	}

	if err := s.sessions.SaveSession(ctx, tokenString, user.ID); err != nil {
		slog.Error("session save failed", "error", err)
		return nil, models.NewAuthRequiredError(MsgAuthFailed)
	}

	session := &models.Session{UserID: user.ID, AccessToken: tokenString}
	s.notify(models.AuthEvent{Type: models.AuthSignedIn, User: user.Profile(), Session: session})
	return session, nil
}

// Logout closes the session. Local observer state is the session bridge's
// concern, not this method's.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token != "" {
		if err := s.sessions.DeleteSession(ctx, token); err != nil {
			slog.Warn("session delete failed", "error", err)
			return models.NewBackendError(MsgLogoutFailed)
		}
	}
	s.notify(models.AuthEvent{Type: models.AuthSignedOut})
	return nil
}

// CurrentUser resolves the token to the reduced account projection, or nil
// when there is no authenticated account.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.UserProfile, error) {
	userID := s.resolveSession(ctx, token)
	if userID == "" {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("current user lookup failed", "error", err)
		return nil, nil
	}
	return user.Profile(), nil
}

// CurrentSession resolves the token to the reduced session projection, or
// nil when there is no active session.
func (s *AuthService) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	userID := s.resolveSession(ctx, token)
	if userID == "" {
		return nil, nil
	}
	return &models.Session{UserID: userID, AccessToken: token}, nil
}

func (s *AuthService) resolveSession(ctx context.Context, token string) string {
	if token == "" {
		return ""
	}
	userID, err := s.sessions.UserIDByToken(ctx, token)
	if err != nil {
		slog.Warn("session lookup failed", "error", err)
		return ""
	}
	return userID
}

// OnAuthStateChange registers a listener for sign-in/sign-out transitions
// and returns its unsubscribe function. Listeners run synchronously on the
// goroutine that triggered the transition; there is no concurrent-invocation
// guarantee beyond that.
func (s *AuthService) OnAuthStateChange(listener func(models.AuthEvent)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *AuthService) notify(event models.AuthEvent) {
	s.mu.Lock()
	listeners := make([]func(models.AuthEvent), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}
