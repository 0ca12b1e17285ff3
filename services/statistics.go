package services

import (
	"context"
	"fmt"

	"backend/models"

	"go.uber.org/zap"
)

// Statistics is the monthly sales summary.
type Statistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int64   `json:"totalSoldItems"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems"`
}

// GetStatistics computes the sale-amount total over sold records plus the
// sold and unsold counts for the given month. An empty month yields zeros,
// not an error.
func (s *Service) GetStatistics(ctx context.Context, month string) (*Statistics, error) {
	start, end, err := ResolveMonthRange(month)
	if err != nil {
		return nil, err
	}

	var stats Statistics

	if err := s.db.WithContext(ctx).Model(&models.ProductTransaction{}).
		Where("date_of_sale BETWEEN ? AND ?", start, end).
		Where("sold = ?", true).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.TotalSaleAmount).Error; err != nil {
		s.logger.Error("failed to sum sale amount", zap.String("month", month), zap.Error(err))
		return nil, fmt.Errorf("sum sale amount: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&models.ProductTransaction{}).
		Where("date_of_sale BETWEEN ? AND ?", start, end).
		Where("sold = ?", true).
		Count(&stats.TotalSoldItems).Error; err != nil {
		s.logger.Error("failed to count sold items", zap.String("month", month), zap.Error(err))
		return nil, fmt.Errorf("count sold items: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&models.ProductTransaction{}).
		Where("date_of_sale BETWEEN ? AND ?", start, end).
		Where("sold = ?", false).
		Count(&stats.TotalNotSoldItems).Error; err != nil {
		s.logger.Error("failed to count unsold items", zap.String("month", month), zap.Error(err))
		return nil, fmt.Errorf("count unsold items: %w", err)
	}

	return &stats, nil
}
