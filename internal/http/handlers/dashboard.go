package handlers

import (
	"net/http"

	"femida/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard
func GetDashboard(c *gin.Context) {
	stats, err := dashboardSvc(c).Stats(utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
