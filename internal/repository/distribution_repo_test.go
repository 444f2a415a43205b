package repository

import (
	"TeleInvest/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDistribution(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	investRepo := NewInvestmentRepo(db)
	repo := NewDistributionRepo(db)
	ctx := context.Background()

	_, err := investRepo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-1", ChannelID: channel.ID, Quantity: 4, Amount: 500, RequestID: "req-1",
	})
	require.NoError(t, err)
	_, err = investRepo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-2", ChannelID: channel.ID, Quantity: 10, Amount: 1250, RequestID: "req-2",
	})
	require.NoError(t, err)

	applied, err := repo.RecordDistribution(ctx, channel.ID, "2026-07", 2.5)
	require.NoError(t, err)
	require.True(t, applied)

	holding, err := investRepo.GetByUserAndChannel(ctx, "user-1", channel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10, holding.TotalEarnings, 0.001) // 4 shares * 2.5

	holding, err = investRepo.GetByUserAndChannel(ctx, "user-2", channel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25, holding.TotalEarnings, 0.001)

	var profile model.UserProfile
	require.NoError(t, db.Where("user_id = ?", "user-2").First(&profile).Error)
	assert.InDelta(t, 25, profile.TotalEarnings, 0.001)
}

func TestRecordDistributionIsIdempotentPerPeriod(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	investRepo := NewInvestmentRepo(db)
	repo := NewDistributionRepo(db)
	ctx := context.Background()

	_, err := investRepo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-1", ChannelID: channel.ID, Quantity: 4, Amount: 500, RequestID: "req-1",
	})
	require.NoError(t, err)

	applied, err := repo.RecordDistribution(ctx, channel.ID, "2026-07", 2.5)
	require.NoError(t, err)
	require.True(t, applied)

	// Same period again is a no-op; earnings must not double.
	applied, err = repo.RecordDistribution(ctx, channel.ID, "2026-07", 2.5)
	require.NoError(t, err)
	assert.False(t, applied)

	holding, err := investRepo.GetByUserAndChannel(ctx, "user-1", channel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10, holding.TotalEarnings, 0.001)

	// A new period pays out again.
	applied, err = repo.RecordDistribution(ctx, channel.ID, "2026-08", 2.5)
	require.NoError(t, err)
	assert.True(t, applied)

	holding, err = investRepo.GetByUserAndChannel(ctx, "user-1", channel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 20, holding.TotalEarnings, 0.001)
}
