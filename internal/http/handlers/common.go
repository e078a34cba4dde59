package handlers

import (
	"net/http"
	"strconv"

	intconfig "femida/internal/config"
	"femida/internal/http/middleware"
	"femida/internal/repositories"
	"femida/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// pathID parses the :id segment; responds 400 and returns false on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, name string) int64 {
	v, _ := strconv.ParseInt(c.Query(name), 10, 64)
	return v
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

// Per-request service constructors. Repositories share the process-wide pool.

func bookingSvc(c *gin.Context) services.BookingService {
	db := intconfig.DB
	return services.BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		RoomRepo:    repositories.RoomRepository{DB: db},
		GuestRepo:   repositories.GuestRepository{DB: db},
		AuditRepo:   repositories.AuditRepository{DB: db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func roomSvc(c *gin.Context) services.RoomService {
	db := intconfig.DB
	return services.RoomService{
		RoomRepo:    repositories.RoomRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		AuditRepo:   repositories.AuditRepository{DB: db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func guestSvc(c *gin.Context) services.GuestService {
	db := intconfig.DB
	return services.GuestService{
		GuestRepo: repositories.GuestRepository{DB: db},
		AuditRepo: repositories.AuditRepository{DB: db},
		RequestID: middleware.GetRequestID(c),
	}
}

func trashSvc(c *gin.Context) services.TrashService {
	db := intconfig.DB
	return services.TrashService{
		RoomRepo:    repositories.RoomRepository{DB: db},
		GuestRepo:   repositories.GuestRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		AuditRepo:   repositories.AuditRepository{DB: db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func reportSvc(c *gin.Context) services.ReportService {
	db := intconfig.DB
	return services.ReportService{
		BookingRepo: repositories.BookingRepository{DB: db},
		RoomRepo:    repositories.RoomRepository{DB: db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func dashboardSvc(c *gin.Context) services.DashboardService {
	db := intconfig.DB
	return services.DashboardService{
		BookingRepo: repositories.BookingRepository{DB: db},
		RoomRepo:    repositories.RoomRepository{DB: db},
		GuestRepo:   repositories.GuestRepository{DB: db},
		RequestID:   middleware.GetRequestID(c),
	}
}

func docsSvc(c *gin.Context) services.DocsService {
	db := intconfig.DB
	return services.DocsService{
		BookingRepo: repositories.BookingRepository{DB: db},
		RoomRepo:    repositories.RoomRepository{DB: db},
		RequestID:   middleware.GetRequestID(c),
	}
}
