package report

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gemcast-api/internal/middlewares"
	"gemcast-api/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService ReportServicePort
}

func (rc *ReportController) GenerateReport(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "쿼리 없음"})
		return
	}

	rep, err := rc.ReportService.Generate(c.Request.Context(), input.Query, input.Model, input.Format)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "쿼리 없음"})
		case errors.Is(err, ErrUnsupportedFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("generate_report [%s]: %v", middlewares.GetRequestID(c), err)
			middlewares.ReportError(c, err, "generate_report")
			msg, details := util.ErrorDetails(err, msgGenerateFailed)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": details})
		}
		return
	}

	c.JSON(http.StatusOK, rep)
}
