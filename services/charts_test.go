package services

import (
	"context"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBarChartData_FixedBuckets(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, marchFixture())

	data, err := svc.GetBarChartData(context.Background(), "2024-03")
	require.NoError(t, err)

	// 50 -> [0,100), 150 -> [100,200), 250 -> [200,300)
	assert.Equal(t, []ChartEntry{
		{Label: "0", Count: 1},
		{Label: "100", Count: 1},
		{Label: "200", Count: 1},
	}, data)
}

func TestGetBarChartData_CountsSumToTotal(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, marchFixture())

	data, err := svc.GetBarChartData(context.Background(), "2024-03")
	require.NoError(t, err)

	var sum int64
	for _, entry := range data {
		sum += entry.Count
	}

	page, err := svc.ListTransactions(context.Background(), "2024-03", "", 1)
	require.NoError(t, err)
	assert.Equal(t, page.Count, sum)
}

func TestGetBarChartData_TopBucketOpenEnded(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, []models.ProductTransaction{
		{Description: "TV", Price: 950, Category: "electronics", DateOfSale: marchDay(3), Sold: true},
		{Description: "Laptop", Price: 2999.99, Category: "electronics", DateOfSale: marchDay(4), Sold: true},
	})

	data, err := svc.GetBarChartData(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, []ChartEntry{{Label: "900", Count: 2}}, data)
}

func TestGetBarChartData_NegativePriceFallsIntoOther(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, []models.ProductTransaction{
		{Description: "Refund", Price: -10, Category: "misc", DateOfSale: marchDay(6), Sold: false},
		{Description: "Mug", Price: 12, Category: "misc", DateOfSale: marchDay(7), Sold: true},
	})

	data, err := svc.GetBarChartData(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, []ChartEntry{
		{Label: "0", Count: 1},
		{Label: "Other", Count: 1},
	}, data)
}

func TestGetBarChartData_EmptyMonth(t *testing.T) {
	svc := newTestService(t)

	data, err := svc.GetBarChartData(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestGetPieChartData_GroupsByCategory(t *testing.T) {
	svc := newTestService(t)
	fixture := marchFixture()
	fixture = append(fixture, models.ProductTransaction{
		Description: "USB cable", Price: 9, Category: "electronics", DateOfSale: marchDay(25), Sold: true,
	})
	mustCreate(t, svc, fixture)

	data, err := svc.GetPieChartData(context.Background(), "2024-03")
	require.NoError(t, err)

	assert.ElementsMatch(t, []ChartEntry{
		{Label: "electronics", Count: 2},
		{Label: "home", Count: 1},
		{Label: "furniture", Count: 1},
	}, data)
}

func TestGetPieChartData_InvalidMonth(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetPieChartData(context.Background(), "march")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
