package services

import (
	"context"
	"encoding/json"
	"fmt"

	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"resty.dev/v3"
)

// InitializeDatabase fetches the seed feed and replaces the whole collection
// with its contents, returning the number of records loaded. The replace is
// delete-all then insert-all, not transactional: a failure after the delete
// leaves the store empty or partial, which is logged. Fetch and decode
// failures happen before the delete and leave existing data untouched.
func (s *Service) InitializeDatabase(ctx context.Context) (int, error) {
	client := resty.New()
	defer client.Close()

	resp, err := client.R().SetContext(ctx).Get(s.seedURL)
	if err != nil {
		return 0, fmt.Errorf("fetch seed data: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("fetch seed data: upstream returned %s", resp.Status())
	}

	var transactions []models.ProductTransaction
	if err := json.Unmarshal(resp.Bytes(), &transactions); err != nil {
		return 0, fmt.Errorf("decode seed data: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.ProductTransaction{}).Error; err != nil {
		return 0, fmt.Errorf("clear transactions: %w", err)
	}

	if len(transactions) > 0 {
		if err := s.db.WithContext(ctx).CreateInBatches(transactions, 100).Error; err != nil {
			s.logger.Error("seed insert failed, collection may be empty or partial",
				zap.Int("records", len(transactions)), zap.Error(err))
			return 0, fmt.Errorf("insert seed data: %w", err)
		}
	}

	s.logger.Info("inserted transactions", zap.Int("records", len(transactions)), zap.String("source", s.seedURL))
	return len(transactions), nil
}
