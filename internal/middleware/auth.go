package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"loanhub/api/internal/security"
)

const claimsKey = "claims"

// Auth verifies the bearer token statelessly: a missing token is
// unauthorized, a token that fails verification is forbidden. There is no
// session lookup; a leaked token stays valid until its expiry.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(claimsKey, *claims)

		c.Next()
	}
}

// CurrentClaims returns the identity attached by Auth, if any.
func CurrentClaims(c *gin.Context) (security.Claims, bool) {
	claimsVal, exists := c.Get(claimsKey)
	if !exists {
		return security.Claims{}, false
	}
	claims, ok := claimsVal.(security.Claims)
	return claims, ok
}
