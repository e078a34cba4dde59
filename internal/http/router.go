package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "femida/internal/config"
	"femida/internal/domain/models"
	h "femida/internal/http/handlers"
	"femida/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.POST("/auth/login", h.Login)

		authed := api.Group("", middleware.RequireAuth(env.JWTSecret))
		{
			authed.GET("/auth/me", h.Me)

			users := authed.Group("/users", middleware.RequireRoles(models.RoleSuperadmin))
			users.GET("", h.GetUsers)
			users.GET("/:id", h.GetUserByID)
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)

			buildings := authed.Group("/buildings")
			buildings.GET("", h.GetBuildings)
			buildings.GET("/:id", h.GetBuildingByID)
			buildings.POST("", h.CreateBuilding)
			buildings.PUT("/:id", h.UpdateBuilding)
			buildings.DELETE("/:id", h.DeleteBuilding)

			rooms := authed.Group("/rooms")
			rooms.GET("", h.GetRooms)
			rooms.GET("/:id", h.GetRoomByID)
			rooms.POST("", h.CreateRoom)
			rooms.PUT("/:id", h.UpdateRoom)
			rooms.DELETE("/:id", h.DeleteRoom)
			rooms.POST("/:id/restore", h.RestoreRoom)

			guests := authed.Group("/guests")
			guests.GET("", h.GetGuests)
			guests.GET("/export", h.ExportGuests)
			guests.GET("/:id", h.GetGuestByID)
			guests.POST("", h.CreateGuest)
			guests.PUT("/:id", h.UpdateGuest)
			guests.DELETE("/:id", h.DeleteGuest)
			guests.POST("/:id/restore", h.RestoreGuest)

			bookings := authed.Group("/bookings")
			bookings.GET("", h.GetBookings)
			bookings.GET("/calendar", h.BookingCalendar)
			bookings.GET("/grid", h.BookingGrid)
			bookings.GET("/:id", h.GetBookingByID)
			bookings.GET("/:id/confirmation", h.BookingConfirmation)
			bookings.POST("", h.CreateBooking)
			bookings.PUT("/:id", h.UpdateBooking)
			bookings.POST("/:id/cancel", h.CancelBooking)
			bookings.DELETE("/:id", h.DeleteBooking)
			bookings.POST("/:id/restore", h.RestoreBooking)

			trash := authed.Group("/trash")
			trash.GET("/:type", h.GetTrash)
			trash.POST("/:type/:id/restore", h.RestoreFromTrash)
			trash.POST("/:type/:id/delete", h.PurgeFromTrash)

			reports := authed.Group("/reports")
			reports.GET("", h.GetReports)
			reports.GET("/export", h.ExportReports)

			authed.GET("/dashboard", h.GetDashboard)
			authed.GET("/audit-logs", h.GetAuditLogs)
		}
	}

	h.SetRouter(r)
	return r
}
