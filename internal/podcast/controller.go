package podcast

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gemcast-api/internal/middlewares"
	"gemcast-api/internal/util"

	"github.com/gin-gonic/gin"
)

type PodcastController struct {
	PodcastService PodcastServicePort
}

func (pc *PodcastController) GeneratePodcast(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "쿼리 없음"})
		return
	}

	p, err := pc.PodcastService.Generate(c.Request.Context(), input.Query, input.Model)
	if err != nil {
		if errors.Is(err, util.ErrMissingQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "쿼리 없음"})
			return
		}
		log.Printf("generate_podcast [%s]: %v", middlewares.GetRequestID(c), err)
		middlewares.ReportError(c, err, "generate_podcast")
		msg, details := util.ErrorDetails(err, msgGenerateFailed)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": details})
		return
	}

	c.JSON(http.StatusOK, p)
}
