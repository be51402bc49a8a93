package service

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/maze-words/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMazes(t *testing.T) {
	svc := NewMazes()

	t.Run("same seed same maze", func(t *testing.T) {
		first, err := svc.Generate(8, 6, 99)
		require.NoError(t, err)
		second, err := svc.Generate(8, 6, 99)
		require.NoError(t, err)
		assert.Equal(t, first.Grid, second.Grid)
		assert.Equal(t, first.Passages, second.Passages)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := svc.Generate(0, 6, 1)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})
}

func TestWords(t *testing.T) {
	got, err := NewWords().Extract(strings.NewReader("Hello, world! hello WORLD."))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, got)
}
