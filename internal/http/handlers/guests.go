package handlers

import (
	"net/http"

	"femida/internal/domain/models"
	"femida/internal/http/middleware"
	"femida/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/guests
func GetGuests(c *gin.Context) {
	guests, err := guestSvc(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/guests/:id
func GetGuestByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	guest, err := guestSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// POST /api/guests
func CreateGuest(c *gin.Context) {
	var in models.Guest
	if !BindJSONOrError(c, &in) {
		return
	}
	created, err := guestSvc(c).Create(in, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/guests/:id
func UpdateGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.Guest
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = id
	if err := guestSvc(c).Update(in, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	guest, err := guestSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DELETE /api/guests/:id moves the guest to the trash.
func DeleteGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := guestSvc(c).SoftDelete(id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guest moved to trash"})
}

// POST /api/guests/:id/restore
func RestoreGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := guestSvc(c).Restore(id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guest restored"})
}

// GET /api/guests/export streams the guest list as CSV.
func ExportGuests(c *gin.Context) {
	content, filename, err := guestSvc(c).ExportCSV(utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
