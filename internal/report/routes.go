package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, reportService ReportServicePort) {
	reportController := &ReportController{ReportService: reportService}

	r.POST("/generate_report", reportController.GenerateReport)
}
