package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/database"
	"github.com/angeroddy/sceno-app-sub001/internal/config"
	"github.com/angeroddy/sceno-app-sub001/internal/email"
	"github.com/angeroddy/sceno-app-sub001/internal/handlers"
	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/logger"
	"github.com/angeroddy/sceno-app-sub001/internal/routes"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
	"github.com/angeroddy/sceno-app-sub001/internal/workers"
)

// Run boots the whole service: config, logger, database, wiring, worker,
// HTTP listener.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	sender, err := email.NewSMTPSender(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
	if err != nil {
		logger.Fatal("Failed to configure email sender", "error", err)
	}

	router, svcs := SetupRouter(cfg, db, sender)

	worker := workers.NewSweepWorker(svcs.Sweep, cfg.Sweep.Schedule)
	if err := worker.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start sweep worker", "error", err)
	}
	defer worker.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware and routes wired.
// Split out so tests can mount it on httptest.
func SetupRouter(cfg *config.Config, db *gorm.DB, sender email.Sender) (*gin.Engine, *services.Registry) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	svcs := services.NewRegistry(db, cfg, sender)
	hdls := handlers.NewRegistry(cfg, svcs)
	verifier := identity.NewVerifier(cfg.Session.Secret, cfg.SessionTTL(), cfg.Session.CookieName)

	router := gin.Default()
	routes.Setup(router, hdls, verifier, svcs.Principal)

	return router, svcs
}
