package handlers

import (
	"net/http"
	"time"

	intconfig "femida/internal/config"
	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/http/middleware"
	"femida/internal/repositories"
	"femida/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret []byte

// Configure wires env-dependent handler state. Called once from the router.
func Configure(env intconfig.Env) {
	jwtSecret = []byte(env.JWTSecret)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{DB: intconfig.DB}
	user, err := repo.GetByUsername(req.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "wrong username or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong username or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	_ = repo.TouchLastSeen(user.ID)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "username="+user.Username)

	user.IsOnline = true
	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user":  user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	repo := repositories.UserRepository{DB: intconfig.DB}
	user, err := repo.GetByID(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// The request itself is activity; after a successful touch the user is
	// online regardless of how stale the stored last_seen was.
	if err := repo.TouchLastSeen(user.ID); err == nil {
		user.IsOnline = true
	} else {
		user.IsOnline = user.Online(utils.NowUTC())
	}
	c.JSON(http.StatusOK, user)
}

// resolvedUser derives display state shared by the user listings.
func resolvedUser(u models.User, now time.Time) models.User {
	u.IsOnline = u.Online(now)
	return u
}
