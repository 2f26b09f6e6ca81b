package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"

	tokens "github.com/ArowuTest/newslens-backend/pkg/jwt"
)

// SubjectKey is the gin context key holding the verified token subject
const SubjectKey = "tokenSubject"

// TokenVerifier validates bearer tokens
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

var _ TokenVerifier = (*tokens.TokenService)(nil)

// JWTAuthMiddleware creates a gin middleware for JWT authentication.
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const bearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
			return
		}

		subject, err := verifier.Verify(authHeader[len(bearerSchema):])
		if err != nil {
			slog.Warn("Token validation failed", "error", err, "requestId", c.GetString(RequestIDKey))
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
