package services

import (
	"context"
	"fmt"
	"strings"

	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pageSize is the fixed page size of the transaction listing.
const pageSize = 10

// TransactionPage is one page of matching records plus the total match
// count, which ignores pagination.
type TransactionPage struct {
	Rows  []models.ProductTransaction `json:"rows"`
	Count int64                       `json:"count"`
}

// ListTransactions returns the records of the given month whose description
// contains search (case-insensitive, empty matches everything), paginated
// with a fixed page size of 10. page is 1-indexed; values below 1 are
// treated as 1.
func (s *Service) ListTransactions(ctx context.Context, month, search string, page int) (*TransactionPage, error) {
	start, end, err := ResolveMonthRange(month)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	query := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&models.ProductTransaction{}).
			Where("date_of_sale BETWEEN ? AND ?", start, end)
		if search != "" {
			q = q.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		return q
	}

	var count int64
	if err := query().Count(&count).Error; err != nil {
		s.logger.Error("failed to count transactions", zap.String("month", month), zap.Error(err))
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	rows := make([]models.ProductTransaction, 0, pageSize)
	if err := query().Order("id").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		s.logger.Error("failed to fetch transactions", zap.String("month", month), zap.Int("page", page), zap.Error(err))
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	return &TransactionPage{Rows: rows, Count: count}, nil
}
