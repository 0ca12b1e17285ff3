package services

import (
	"context"

	"backend/models"

	"golang.org/x/sync/errgroup"
)

// CombinedData merges the first transaction page, the statistics and both
// chart aggregations for one month into a single payload.
type CombinedData struct {
	Transactions []models.ProductTransaction `json:"transactions"`
	Count        int64                       `json:"count"`
	Statistics   *Statistics                 `json:"statistics"`
	BarChartData []ChartEntry                `json:"barChartData"`
	PieChartData []ChartEntry                `json:"pieChartData"`
}

// GetCombinedData runs the four month queries concurrently. The month is
// validated once up front so an invalid value fails before any query runs;
// if a sub-query fails, its error is the single result and the other
// results are discarded.
func (s *Service) GetCombinedData(ctx context.Context, month string) (*CombinedData, error) {
	if _, _, err := ResolveMonthRange(month); err != nil {
		return nil, err
	}

	var (
		page  *TransactionPage
		stats *Statistics
		bar   []ChartEntry
		pie   []ChartEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.ListTransactions(gctx, month, "", 1)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.GetStatistics(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		bar, err = s.GetBarChartData(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		pie, err = s.GetPieChartData(gctx, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CombinedData{
		Transactions: page.Rows,
		Count:        page.Count,
		Statistics:   stats,
		BarChartData: bar,
		PieChartData: pie,
	}, nil
}
