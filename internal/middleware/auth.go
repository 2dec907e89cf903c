// Package middleware holds the gin middleware for token authentication
// and admin authorization.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"harmony-store/internal/auth"
)

const identityKey = "identity"

// Authenticate verifies the bearer token from the Authorization header
// and stores the resulting identity on the request context. Missing,
// malformed or expired tokens abort with 401.
func Authenticate(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			return
		}

		identity, err := issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token."})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the authenticated identity carries
// the admin flag. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Identity(c).RequireAdmin(); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required."})
			return
		}
		c.Next()
	}
}

// Identity returns the identity set by Authenticate. The zero value is
// returned on routes that skipped authentication.
func Identity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(auth.Identity); ok {
			return id
		}
	}
	return auth.Identity{}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
