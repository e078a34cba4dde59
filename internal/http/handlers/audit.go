package handlers

import (
	"net/http"

	intconfig "femida/internal/config"
	"femida/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/audit-logs?limit=N
func GetAuditLogs(c *gin.Context) {
	entries, err := repositories.AuditRepository{DB: intconfig.DB}.List(queryInt(c, "limit"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
