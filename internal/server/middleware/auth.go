package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"poll-service/internal/ports/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	userContextKey  = contextKey("user")
	tokenContextKey = contextKey("token")
)

// SessionChecker reports which account owns a token's server-side session.
// An empty id means the session is gone, typically revoked by logout.
type SessionChecker interface {
	UserIDByToken(ctx context.Context, token string) (string, error)
}

// BearerAuth resolves the caller's identity from a bearer token, if one is
// present and valid, and stores it on the request context. A signature-valid
// token alone is not enough: the server-side session must still exist, so a
// logged-out token loses its identity on every route, not only the session
// endpoints. It never aborts: authentication is enforced by the services,
// which own the user-facing messages for each operation.
func BearerAuth(secret string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.Next()
			return
		}

		// The raw token stays on the context either way so logout can
		// delete whatever the caller presented.
		ctx := context.WithValue(c.Request.Context(), tokenContextKey, tokenString)

		userID, err := sessions.UserIDByToken(ctx, tokenString)
		if err != nil {
			slog.Warn("session lookup failed", "error", err)
		}
		if userID == sub {
			email, _ := claims["email"].(string)
			ctx = context.WithValue(ctx, userContextKey, &models.UserProfile{ID: sub, Email: email})
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CallerFromContext returns the authenticated caller, or nil when the
// request carried no valid token.
func CallerFromContext(ctx context.Context) *models.UserProfile {
	caller, _ := ctx.Value(userContextKey).(*models.UserProfile)
	return caller
}

// TokenFromContext returns the raw bearer token, or "" when absent.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && bearerToken[:7] == "Bearer " {
		return bearerToken[7:]
	}
	return ""
}
