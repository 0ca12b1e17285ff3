package controllers

import (
	"backend/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DatabaseController implements the seed-load endpoint.
type DatabaseController struct {
	service *services.Service
	logger  *zap.Logger
}

// NewDatabaseController creates a new database controller.
func NewDatabaseController(service *services.Service, logger *zap.Logger) *DatabaseController {
	return &DatabaseController{
		service: service,
		logger:  logger,
	}
}

// InitializeDatabase replaces the transaction collection with the contents
// of the upstream feed.
func (dc *DatabaseController) InitializeDatabase(c *fiber.Ctx) error {
	count, err := dc.service.InitializeDatabase(c.UserContext())
	if err != nil {
		dc.logger.Error("error initializing database", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Error initializing database")
	}

	dc.logger.Info("database initialized", zap.Int("records", count))
	return c.SendString("Database initialized successfully")
}
