package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-words/infrastruture/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenizer := token.NewJwtService("test-secret", "maze-words")

	router := gin.New()
	router.GET("/private", Authoriz(tokenizer), func(c *gin.Context) {
		claims, ok := c.Get(ContextUserClaims)
		require.True(t, ok)
		c.JSON(http.StatusOK, claims)
	})

	valid, err := tokenizer.Generate(map[string]interface{}{"sub": "cli"}, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"missing token", "Bearer", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
