package services

import (
	"context"
	"fmt"
	"strconv"

	"backend/models"

	"go.uber.org/zap"
)

// bucketBoundaries are the lower bounds of the price histogram. The last
// bucket is open-ended (900 and up).
var bucketBoundaries = []int{0, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// ChartEntry is one chart slice: a bucket or category label under the feed's
// "_id" key, and the number of records in it.
type ChartEntry struct {
	Label string `json:"_id"`
	Count int64  `json:"count"`
}

// GetBarChartData buckets the month's records by price into fixed ranges of
// width 100. Only non-empty buckets are returned, lowest boundary first;
// prices below 0 land in a trailing "Other" entry.
func (s *Service) GetBarChartData(ctx context.Context, month string) ([]ChartEntry, error) {
	start, end, err := ResolveMonthRange(month)
	if err != nil {
		return nil, err
	}

	var prices []float64
	if err := s.db.WithContext(ctx).Model(&models.ProductTransaction{}).
		Where("date_of_sale BETWEEN ? AND ?", start, end).
		Pluck("price", &prices).Error; err != nil {
		s.logger.Error("failed to fetch prices for bar chart", zap.String("month", month), zap.Error(err))
		return nil, fmt.Errorf("fetch bar chart prices: %w", err)
	}

	counts := make([]int64, len(bucketBoundaries))
	var other int64
	for _, p := range prices {
		if p < float64(bucketBoundaries[0]) {
			other++
			continue
		}
		idx := len(bucketBoundaries) - 1
		for i := 1; i < len(bucketBoundaries); i++ {
			if p < float64(bucketBoundaries[i]) {
				idx = i - 1
				break
			}
		}
		counts[idx]++
	}

	entries := make([]ChartEntry, 0, len(counts)+1)
	for i, c := range counts {
		if c == 0 {
			continue
		}
		entries = append(entries, ChartEntry{Label: strconv.Itoa(bucketBoundaries[i]), Count: c})
	}
	if other > 0 {
		entries = append(entries, ChartEntry{Label: "Other", Count: other})
	}

	return entries, nil
}

// GetPieChartData groups the month's records by category. The category set
// is data-driven and the order unspecified.
func (s *Service) GetPieChartData(ctx context.Context, month string) ([]ChartEntry, error) {
	start, end, err := ResolveMonthRange(month)
	if err != nil {
		return nil, err
	}

	var entries []ChartEntry
	if err := s.db.WithContext(ctx).Model(&models.ProductTransaction{}).
		Select("category AS label, COUNT(*) AS count").
		Where("date_of_sale BETWEEN ? AND ?", start, end).
		Group("category").
		Scan(&entries).Error; err != nil {
		s.logger.Error("failed to group categories for pie chart", zap.String("month", month), zap.Error(err))
		return nil, fmt.Errorf("fetch pie chart data: %w", err)
	}

	return entries, nil
}
