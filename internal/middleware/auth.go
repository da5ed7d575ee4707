package middleware

import (
	"net/http"
	"strings"

	"flagit/internal/auth"

	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// Authenticate verifies the Authorization header, when present, and attaches
// the resulting identity to the request context. A "Bearer " prefix is
// stripped before verification. The middleware never rejects on its own;
// route groups that need a caller stack RequireIdentity on top.
func Authenticate(v auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header != "" {
			token := strings.TrimPrefix(header, "Bearer ")
			if ident, err := v.Verify(c.Request.Context(), token); err == nil {
				c.Set(IdentityKey, ident)
			}
		}
		c.Next()
	}
}

// RequireIdentity aborts with 401 before any store access happens when no
// verified identity was attached.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(IdentityKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by Authenticate.
func CurrentIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	ident, ok := v.(*auth.Identity)
	return ident, ok
}
