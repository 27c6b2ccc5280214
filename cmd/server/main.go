package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"valiant-hris/internal/adapters/http/middleware"
	"valiant-hris/internal/adapters/http/routes"
	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/config"
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/password"

	"github.com/gofiber/fiber/v2"

	_ "valiant-hris/docs" // Swagger docs
)

// @title Valiant HRIS API
// @version 1.0
// @description Employee, vessel, attendance and payroll management API

// @contact.name API Support

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables and indexes if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	seeder := config.NewSeeder(db, cfg, password.NewHasher(cfg.BcryptCost))
	if err := seeder.Run(context.Background()); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Payroll settlement job
	settlement := services.NewSettlementService(repositories.NewPayrollRepository(db), cfg.SettleSchedule)
	if err := settlement.Start(); err != nil {
		log.Fatalf("❌ Failed to schedule payroll settlement: %v", err)
	}
	defer settlement.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Valiant HRIS API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	store := middleware.NewLimiterStorage(cfg)
	if store != nil {
		defer store.Close()
	}

	// Setup middlewares
	middleware.Setup(app, cfg, store)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, store)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
