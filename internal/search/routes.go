package search

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, streamer *Streamer, defaultModel string) {
	searchController := NewSearchController(streamer, defaultModel)

	r.GET("/stream_search", searchController.StreamSearch)
}
