// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"lenshub/services/session"
	"lenshub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token against the session store.
// Expiry and token mismatch both end in a cleared session and a 401, so a
// client can only ever observe a clean logged-out state.
func JWTAuthMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subjectID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subjectID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		sess, err := sessions.Load(ctx, subjectID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		if sess.TokenHash != utils.HashToken(tokenString) {
			// Token was revoked or superseded by a newer login.
			if err := sessions.Clear(ctx, subjectID); err != nil {
				utils.GetLogger().Warn("failed to clear mismatched session",
					zap.String("subjectId", subjectID), zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		c.Set("userID", subjectID)
		c.Set("userRole", sess.Role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Must run after
// JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get("userRole")
		if !ok || got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
