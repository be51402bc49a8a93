package service

import (
	"fmt"
	"io"

	"github.com/beka-birhanu/maze-words/maze"
	"github.com/beka-birhanu/maze-words/service/i"
	"github.com/beka-birhanu/maze-words/words"
)

// Mazes generates validated, seeded mazes.
type Mazes struct{}

// NewMazes creates a maze generator service.
func NewMazes() i.MazeGenerator {
	return &Mazes{}
}

// Generate creates a maze with a source private to this call.
func (m *Mazes) Generate(width, height int, seed int64) (*maze.Maze, error) {
	mz, err := maze.New(width, height, maze.NewSeededSource(seed))
	if err != nil {
		return nil, fmt.Errorf("generating %dx%d maze: %w", width, height, err)
	}
	return mz, nil
}

// Words extracts unique words.
type Words struct{}

// NewWords creates a word extraction service.
func NewWords() i.WordExtractor {
	return &Words{}
}

// Extract returns the unique words of r.
func (w *Words) Extract(r io.Reader) ([]string, error) {
	return words.Extract(r)
}
