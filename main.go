package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mediping-server/internal/config"
	"mediping-server/internal/logger"
	"mediping-server/internal/models"
	"mediping-server/internal/notify"
	"mediping-server/internal/routes"
	"mediping-server/internal/schedule"
	"mediping-server/internal/store"
)

func main() {
	// Load environment variables; a missing .env just means the process
	// environment is used as-is.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("error loading config: %v", err))
	}

	logger.Init(cfg.Log)
	defer logger.Sync()
	log := logger.L()

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal("error connecting to database", zap.Error(err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, db, cfg)

	if cfg.Reminders.Enabled {
		scheduler := notify.NewScheduler(
			store.NewGormMedications(db),
			notify.LogSender{Log: log},
			schedule.SystemClock(),
			log,
		)
		if err := scheduler.Start(cfg.Reminders.CronSpec); err != nil {
			log.Fatal("error starting reminder scheduler", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server running", zap.String("port", cfg.Port))
	if err := router.Run(serverAddr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
