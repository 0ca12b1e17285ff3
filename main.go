package main

import (
	"fmt"
	"log"

	"backend/config"
	"backend/controllers"
	"backend/database"
	"backend/routes"
	"backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	fmt.Println("✅ Database connected successfully!")

	service := services.NewService(db, zapLogger, cfg.SeedURL)
	transactionController := controllers.NewTransactionController(service, zapLogger)
	databaseController := controllers.NewDatabaseController(service, zapLogger)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(logger.New())

	routes.RegisterTransactionRoutes(app, transactionController, databaseController)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "🚀 Transaction dashboard backend is running!"})
	})

	fmt.Println("🚀 Server running on port " + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
