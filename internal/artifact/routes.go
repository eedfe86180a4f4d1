package artifact

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, artifactService *ArtifactService) {
	artifactController := &ArtifactController{ArtifactService: artifactService}

	group := r.Group("/api/artifacts")
	{
		group.GET("", artifactController.List)
	}
}
