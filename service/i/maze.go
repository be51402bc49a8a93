package i

import (
	"io"

	"github.com/beka-birhanu/maze-words/maze"
)

// MazeGenerator generates mazes for callers outside the maze package.
type MazeGenerator interface {
	// Generate returns a maze of the given dimensions.
	// The same seed and dimensions always produce the same maze.
	Generate(width, height int, seed int64) (*maze.Maze, error)
}

// WordExtractor extracts the unique words of a text.
type WordExtractor interface {
	// Extract returns the lowercase, punctuation-free unique words of r in ascending order.
	Extract(r io.Reader) ([]string, error)
}
