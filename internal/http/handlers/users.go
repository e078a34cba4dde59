package handlers

import (
	"net/http"

	intconfig "femida/internal/config"
	"femida/internal/domain/models"
	"femida/internal/repositories"
	"femida/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type userRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

// GET /api/users
func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepository{DB: intconfig.DB}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	now := utils.NowUTC()
	for i := range users {
		users[i] = resolvedUser(users[i], now)
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := repositories.UserRepository{DB: intconfig.DB}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolvedUser(user, utils.NowUTC()))
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "username and password are required", nil)
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if role != models.RoleAdmin && role != models.RoleSuperadmin {
		RespondError(c, http.StatusBadRequest, "unknown role", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	created, err := repositories.UserRepository{DB: intconfig.DB}.Create(models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Phone:        req.Phone,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req userRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{DB: intconfig.DB}
	user, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		if req.Role != models.RoleAdmin && req.Role != models.RoleSuperadmin {
			RespondError(c, http.StatusBadRequest, "unknown role", nil)
			return
		}
		user.Role = req.Role
	}
	if err := repo.Update(user); err != nil {
		RespondDomainError(c, err)
		return
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
			return
		}
		if err := repo.UpdatePassword(id, string(hash)); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	user, err = repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolvedUser(user, utils.NowUTC()))
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.UserRepository{DB: intconfig.DB}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
