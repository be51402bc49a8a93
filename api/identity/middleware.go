package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/maze-words/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserClaims is the key used to store token claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// Authoriz rejects requests that do not carry a bearer token accepted by ts.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}
