package middleware

import (
	"TeleInvest/internal/api/config"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/redis"
	"TeleInvest/internal/pkg/response"
	"TeleInvest/internal/pkg/security"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// sessionToken pulls the token from the session cookie, falling back to
// a Bearer header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(config.Cfg.Users.CookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware validates the session token and injects the user
// identity into the request context. Tokens revoked by logout are
// rejected before their expiry.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			response.Fail(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid session token")
			c.Abort()
			return
		}

		revoked, err := redis.GetValue(c.Request.Context(), consts.SessionRevokedKey+signature)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if revoked != "" {
			response.Fail(c, http.StatusUnauthorized, "session expired")
			c.Abort()
			return
		}

		claims, err := security.ValidateSessionToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid session token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID())
		c.Set("roles", claims.Roles)
		c.Set("session_token", tokenString)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID())
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// AuthOptionalMiddleware resolves the user when a valid token is
// present and leaves the identity empty otherwise. List endpoints use it
// to attach per-user holdings for signed-in visitors.
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			c.Set("user_id", "")
			c.Next()
			return
		}

		claims, err := security.ValidateSessionToken(tokenString)
		if err != nil {
			c.Set("user_id", "")
		} else {
			c.Set("user_id", claims.UserID())
			newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID())
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
