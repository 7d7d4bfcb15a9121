package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mediping-server/internal/config"
	"mediping-server/internal/handlers"
	"mediping-server/internal/middleware"
	"mediping-server/internal/schedule"
	"mediping-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	medicationHandler := handlers.NewMedicationHandler(
		store.NewGormMedications(db),
		schedule.SystemClock(),
	)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		medicationRoutes := private.Group("/medications")
		{
			medicationRoutes.GET("", medicationHandler.ListMedications)
			medicationRoutes.POST("", medicationHandler.CreateMedication)
			medicationRoutes.GET("/stats", medicationHandler.DailyStats)
			medicationRoutes.PATCH("/:id/log", medicationHandler.UpdateLog)
			medicationRoutes.GET("/:id/completion", medicationHandler.Completion)
			medicationRoutes.DELETE("/:id", medicationHandler.DeleteMedication)
		}
	}
}
