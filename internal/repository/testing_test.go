package repository

import (
	"TeleInvest/internal/model"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. cache=shared
// keeps the same database visible across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Channel{},
		&model.Investment{},
		&model.UserProfile{},
		&model.EarningsDistribution{},
	))
	return db
}

func seedChannel(t *testing.T, db *gorm.DB, totalShares int64, price float64) *model.Channel {
	t.Helper()

	channel := &model.Channel{
		Name:            "Tech News Daily",
		SubscriberCount: 125000,
		MonthlyRevenue:  12500,
		TotalShares:     totalShares,
		AvailableShares: totalShares,
		PricePerShare:   price,
		IsActive:        true,
	}
	require.NoError(t, db.Create(channel).Error)
	return channel
}
