package controllers

import (
	"errors"

	"backend/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TransactionController holds the transaction service and implements the
// HTTP handlers for the listing, statistics and chart endpoints.
type TransactionController struct {
	service *services.Service
	logger  *zap.Logger
}

// NewTransactionController creates a new transaction controller.
func NewTransactionController(service *services.Service, logger *zap.Logger) *TransactionController {
	return &TransactionController{
		service: service,
		logger:  logger,
	}
}

// invalidMonth is the unified 400 body for a malformed month parameter.
func invalidMonth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid month format"})
}

func (tc *TransactionController) GetTransactions(c *fiber.Ctx) error {
	month := c.Query("month")
	search := c.Query("search")
	page := c.QueryInt("page", 1)

	result, err := tc.service.ListTransactions(c.UserContext(), month, search, page)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			return invalidMonth(c)
		}
		tc.logger.Error("error fetching transactions", zap.String("month", month), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	return c.JSON(result)
}

func (tc *TransactionController) GetStatistics(c *fiber.Ctx) error {
	month := c.Params("month")

	stats, err := tc.service.GetStatistics(c.UserContext(), month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			return invalidMonth(c)
		}
		tc.logger.Error("error fetching statistics", zap.String("month", month), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch statistics"})
	}

	return c.JSON(stats)
}

func (tc *TransactionController) GetBarChart(c *fiber.Ctx) error {
	month := c.Params("month")

	data, err := tc.service.GetBarChartData(c.UserContext(), month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			return invalidMonth(c)
		}
		tc.logger.Error("error fetching bar chart data", zap.String("month", month), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bar chart data"})
	}

	return c.JSON(data)
}

func (tc *TransactionController) GetPieChart(c *fiber.Ctx) error {
	month := c.Params("month")

	data, err := tc.service.GetPieChartData(c.UserContext(), month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			return invalidMonth(c)
		}
		tc.logger.Error("error fetching pie chart data", zap.String("month", month), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pie chart data"})
	}

	return c.JSON(data)
}

func (tc *TransactionController) GetCombined(c *fiber.Ctx) error {
	month := c.Query("month")

	data, err := tc.service.GetCombinedData(c.UserContext(), month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			return invalidMonth(c)
		}
		tc.logger.Error("error fetching combined data", zap.String("month", month), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch combined data"})
	}

	return c.JSON(data)
}
