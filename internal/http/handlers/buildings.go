package handlers

import (
	"net/http"

	intconfig "femida/internal/config"
	"femida/internal/domain/models"
	"femida/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/buildings
func GetBuildings(c *gin.Context) {
	buildings, err := repositories.BuildingRepository{DB: intconfig.DB}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// GET /api/buildings/:id
func GetBuildingByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	building, err := repositories.BuildingRepository{DB: intconfig.DB}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

// POST /api/buildings
func CreateBuilding(c *gin.Context) {
	var in models.Building
	if !BindJSONOrError(c, &in) {
		return
	}
	if in.Name == "" || in.Address == "" {
		RespondError(c, http.StatusBadRequest, "name and address are required", nil)
		return
	}
	created, err := repositories.BuildingRepository{DB: intconfig.DB}.Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/buildings/:id
func UpdateBuilding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.Building
	if !BindJSONOrError(c, &in) {
		return
	}
	in.ID = id
	if err := (repositories.BuildingRepository{DB: intconfig.DB}).Update(in); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

// DELETE /api/buildings/:id
func DeleteBuilding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.BuildingRepository{DB: intconfig.DB}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "building deleted"})
}
