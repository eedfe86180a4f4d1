package podcast

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, podcastService PodcastServicePort) {
	podcastController := &PodcastController{PodcastService: podcastService}

	r.POST("/generate_podcast", podcastController.GeneratePodcast)
}
