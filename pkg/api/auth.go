package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by requireIdentity.
const (
	ctxUserID    = "auth.user_id"
	ctxUserEmail = "auth.user_email"
)

// requireIdentity extracts the caller identity from the auth proxy headers.
// The proxy (oauth2-proxy) authenticates the user and forwards identity as
// X-Forwarded-User / X-Forwarded-Email; requests without both are rejected.
func requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader("X-Forwarded-User")
		email := c.GetHeader("X-Forwarded-Email")
		if user == "" || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing identity headers",
			})
			return
		}
		c.Set(ctxUserID, user)
		c.Set(ctxUserEmail, email)
		c.Next()
	}
}

// callerID returns the authenticated user ID set by requireIdentity.
func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// callerEmail returns the authenticated user email set by requireIdentity.
func callerEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmail)
}
