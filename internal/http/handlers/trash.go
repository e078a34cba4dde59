package handlers

import (
	"net/http"

	"femida/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/trash/:type
func GetTrash(c *gin.Context) {
	items, err := trashSvc(c).List(c.Param("type"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": c.Param("type"), "items": items})
}

// POST /api/trash/:type/:id/restore
func RestoreFromTrash(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := trashSvc(c).Restore(c.Param("type"), id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restored"})
}

// POST /api/trash/:type/:id/delete removes the row permanently.
func PurgeFromTrash(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := trashSvc(c).Purge(c.Param("type"), id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted permanently"})
}
