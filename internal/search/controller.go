package search

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	Streamer     *Streamer
	DefaultModel string
}

func NewSearchController(s *Streamer, defaultModel string) *SearchController {
	return &SearchController{Streamer: s, DefaultModel: defaultModel}
}

func (sc *SearchController) StreamSearch(c *gin.Context) {
	key := NewKey(c.Query("query"), c.Query("model"))
	if key.Model == "" {
		key.Model = sc.DefaultModel
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	for frame := range sc.Streamer.Frames(c.Request.Context(), key) {
		if _, err := io.WriteString(c.Writer, frame.Encode()); err != nil {
			return
		}
		c.Writer.Flush()
	}
}
