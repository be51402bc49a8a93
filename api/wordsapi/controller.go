// Package wordsapi exposes unique word extraction over HTTP.
package wordsapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-words/service/i"
	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 10 << 20

// WordsResponse lists the unique words of a request body.
type WordsResponse struct {
	Words []string `json:"words"`
}

// WordsController extracts unique words from uploaded text.
type WordsController struct {
	extractor i.WordExtractor
}

// NewWordsController initializes a WordsController.
func NewWordsController(e i.WordExtractor) (*WordsController, error) {
	if e == nil {
		return nil, errors.New("word extractor is required")
	}
	return &WordsController{extractor: e}, nil
}

// RegisterPublic registers public routes.
func (wc *WordsController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (wc *WordsController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/words", wc.extract)
}

// extract handles unique word requests. The request body is the text.
func (wc *WordsController) extract(ctx *gin.Context) {
	body := http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)

	words, err := wc.extractor.Extract(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &WordsResponse{Words: words})
}
