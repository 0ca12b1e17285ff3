package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes the transaction queries and aggregations as plain
// functions, independent of the HTTP layer, so handlers and the combined
// composer call the same logic.
type Service struct {
	db      *gorm.DB
	logger  *zap.Logger
	seedURL string
}

// NewService creates a new Service.
func NewService(db *gorm.DB, logger *zap.Logger, seedURL string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		db:      db,
		logger:  logger,
		seedURL: seedURL,
	}
}
