package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poll-service/internal/ports/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeSessions struct {
	byToken map[string]string
	err     error
}

func (f *fakeSessions) UserIDByToken(ctx context.Context, token string) (string, error) {
	return f.byToken[token], f.err
}

func sessionsFor(token, userID string) *fakeSessions {
	return &fakeSessions{byToken: map[string]string{token: userID}}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runRequest(t *testing.T, sessions SessionChecker, authHeader string) (caller *models.UserProfile, token string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(BearerAuth(testSecret, sessions))
	router.GET("/whoami", func(c *gin.Context) {
		caller = CallerFromContext(c.Request.Context())
		token = TokenFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "soft middleware must never abort")
	return caller, token
}

func TestBearerAuthValidToken(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	caller, token := runRequest(t, sessionsFor(signed, "user-1"), "Bearer "+signed)

	require.NotNil(t, caller)
	assert.Equal(t, "user-1", caller.ID)
	assert.Equal(t, "a@b.com", caller.Email)
	assert.Equal(t, signed, token)
}

func TestBearerAuthMissingHeader(t *testing.T) {
	caller, token := runRequest(t, &fakeSessions{}, "")
	assert.Nil(t, caller)
	assert.Empty(t, token)
}

func TestBearerAuthWrongSecret(t *testing.T) {
	signed := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	caller, _ := runRequest(t, sessionsFor(signed, "user-1"), "Bearer "+signed)
	assert.Nil(t, caller)
}

func TestBearerAuthExpiredToken(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	caller, _ := runRequest(t, sessionsFor(signed, "user-1"), "Bearer "+signed)
	assert.Nil(t, caller)
}

func TestBearerAuthMalformedHeader(t *testing.T) {
	caller, _ := runRequest(t, &fakeSessions{}, "Token abc")
	assert.Nil(t, caller)
}

func TestBearerAuthRevokedSession(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	// Signature still checks out, but the server-side session is gone.
	caller, token := runRequest(t, &fakeSessions{byToken: map[string]string{}}, "Bearer "+signed)

	assert.Nil(t, caller, "a logged-out token must carry no identity")
	assert.Equal(t, signed, token, "the raw token still reaches logout")
}

func TestBearerAuthSessionLookupFailure(t *testing.T) {
	signed := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	caller, _ := runRequest(t, &fakeSessions{err: errors.New("redis down")}, "Bearer "+signed)
	assert.Nil(t, caller)
}
