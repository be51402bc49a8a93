package mazeapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/maze-words/maze"
	"github.com/beka-birhanu/maze-words/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves generated mazes.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze generator is required")
	}
	return &MazeController{generator: g}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/maze", mc.generate)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	m, err := mc.generator.Generate(request.Width, request.Height, seed)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	response := &MazeResponse{
		ID:       uuid.New(),
		Width:    m.Width,
		Height:   m.Height,
		Seed:     seed,
		Grid:     m.Grid,
		Passages: m.Passages,
		Rendered: m.String(),
	}

	ctx.JSON(http.StatusOK, response)
}
