package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

const (
	// AuthUserKey is the context key for the authenticated user's claims.
	AuthUserKey = "auth_user"
)

// TokenVerifier checks a bearer token and returns the claims it carries.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*domain.TokenClaims, error)
}

// AuthRequired returns a Gin middleware that rejects requests without a
// valid Bearer token and stores the verified claims in the context.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a Bearer token"})
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, claims)
		c.Next()
	}
}

// GetAuthUser retrieves the verified claims from the gin context.
func GetAuthUser(c *gin.Context) *domain.TokenClaims {
	if v, exists := c.Get(AuthUserKey); exists {
		if claims, ok := v.(*domain.TokenClaims); ok {
			return claims
		}
	}
	return nil
}
