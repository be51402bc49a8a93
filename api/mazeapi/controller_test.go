package mazeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/maze-words/maze"
	"github.com/beka-birhanu/maze-words/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingGenerator struct{}

func (failingGenerator) Generate(int, int, int64) (*maze.Maze, error) {
	return nil, errors.New("boom")
}

func newTestRouter(t *testing.T, c *MazeController) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c.RegisterPublic(router.Group("/api/v1"))
	return router
}

func get(router *gin.Engine, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMazeController(t *testing.T) {
	controller, err := NewMazeController(service.NewMazes())
	require.NoError(t, err)
	router := newTestRouter(t, controller)

	t.Run("generates seeded maze", func(t *testing.T) {
		rec := get(router, "/api/v1/maze?width=4&height=3&seed=11")
		require.Equal(t, http.StatusOK, rec.Code)

		var response MazeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotEqual(t, uuid.Nil, response.ID)
		assert.Equal(t, 4, response.Width)
		assert.Equal(t, 3, response.Height)
		assert.Equal(t, int64(11), response.Seed)
		assert.Len(t, response.Grid, 4)
		assert.Len(t, response.Passages, 11)

		expected := maze.Generate(4, 3, maze.NewSeededSource(11))
		assert.Equal(t, expected.Grid, response.Grid)
		assert.Equal(t, expected.Passages, response.Passages)
		assert.Equal(t, expected.String(), response.Rendered)
	})

	t.Run("same seed same maze", func(t *testing.T) {
		first := get(router, "/api/v1/maze?width=6&height=6&seed=5")
		second := get(router, "/api/v1/maze?width=6&height=6&seed=5")

		var a, b MazeResponse
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
		assert.Equal(t, a.Passages, b.Passages)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("unseeded request", func(t *testing.T) {
		rec := get(router, "/api/v1/maze?width=2&height=2")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, url := range []string{
			"/api/v1/maze?width=0&height=3",
			"/api/v1/maze?width=3",
			"/api/v1/maze?width=-2&height=3",
			"/api/v1/maze?width=513&height=3",
			"/api/v1/maze?width=abc&height=3",
		} {
			rec := get(router, url)
			assert.Equal(t, http.StatusBadRequest, rec.Code, url)
		}
	})
}

func TestMazeControllerGeneratorFailure(t *testing.T) {
	controller, err := NewMazeController(failingGenerator{})
	require.NoError(t, err)
	router := newTestRouter(t, controller)

	rec := get(router, "/api/v1/maze?width=2&height=2&seed=1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewMazeControllerRequiresGenerator(t *testing.T) {
	_, err := NewMazeController(nil)
	assert.Error(t, err)
}
