package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"femida/internal/domain/models"
	"femida/internal/http/middleware"
	"femida/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/rooms?building_id=N
func GetRooms(c *gin.Context) {
	rooms, err := roomSvc(c).List(queryInt64(c, "building_id"), utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/:id
func GetRoomByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := roomSvc(c).Get(id, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type bulkRoomsRequest struct {
	Rooms []models.Room `json:"rooms"`
}

// POST /api/rooms accepts a single room object or `{"rooms":[...]}` for a
// batch, the way the admin UI submits a whole floor at once.
func CreateRoom(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", err)
		return
	}

	var bulk bulkRoomsRequest
	if err := json.Unmarshal(body, &bulk); err == nil && len(bulk.Rooms) > 0 {
		created, err := roomSvc(c).BulkCreate(bulk.Rooms, middleware.UserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"rooms": created, "count": len(created)})
		return
	}

	var in models.Room
	if err := json.Unmarshal(body, &in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	created, err := roomSvc(c).Create(in, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/rooms/:id
func UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.Room
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = id
	if err := roomSvc(c).Update(in, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	room, err := roomSvc(c).Get(id, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /api/rooms/:id moves the room to the trash.
func DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := roomSvc(c).SoftDelete(id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room moved to trash"})
}

// POST /api/rooms/:id/restore
func RestoreRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := roomSvc(c).Restore(id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room restored"})
}
