// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/maze-words/maze"
	"github.com/google/uuid"
)

// MazeRequest holds the query parameters of a maze request.
type MazeRequest struct {
	Width  int    `form:"width" binding:"required,min=1,max=512"`
	Height int    `form:"height" binding:"required,min=1,max=512"`
	Seed   *int64 `form:"seed"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID       uuid.UUID      `json:"id"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Seed     int64          `json:"seed"`
	Grid     [][]int        `json:"grid"`
	Passages []maze.Passage `json:"passages"`
	Rendered string         `json:"rendered"`
}
