package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// newTestService returns a Service backed by a fresh in-memory sqlite
// database. Each test gets its own named database so parallel tests cannot
// see each other's rows.
func newTestService(t *testing.T) *Service {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "=", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ProductTransaction{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewService(db, zaptest.NewLogger(t), "")
}

func mustCreate(t *testing.T, s *Service, transactions []models.ProductTransaction) {
	t.Helper()
	require.NoError(t, s.db.Create(&transactions).Error)
}

func marchDay(day int) time.Time {
	return time.Date(2024, time.March, day, 12, 0, 0, 0, time.Local)
}

// marchFixture is the reference dataset: three March 2024 records with
// prices 50/150/250 (two sold, one not), plus neighbors in February and
// April that month-scoped queries must never see.
func marchFixture() []models.ProductTransaction {
	return []models.ProductTransaction{
		{Description: "Wireless mouse", Price: 50, Category: "electronics", DateOfSale: marchDay(5), Sold: true},
		{Description: "Desk lamp", Price: 150, Category: "home", DateOfSale: marchDay(10), Sold: true},
		{Description: "Office chair", Price: 250, Category: "furniture", DateOfSale: marchDay(20), Sold: false},
		{Description: "Notebook", Price: 20, Category: "stationery", DateOfSale: time.Date(2024, time.February, 15, 12, 0, 0, 0, time.Local), Sold: true},
		{Description: "Monitor stand", Price: 80, Category: "electronics", DateOfSale: time.Date(2024, time.April, 2, 12, 0, 0, 0, time.Local), Sold: false},
	}
}
