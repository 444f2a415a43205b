package repository

import (
	"TeleInvest/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApplyPurchaseFirstThenRepeat(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	repo := NewInvestmentRepo(db)
	ctx := context.Background()

	holding, err := repo.ApplyPurchase(ctx, PurchaseParams{
		UserID:    "user-1",
		ChannelID: channel.ID,
		Quantity:  4,
		Amount:    500,
		RequestID: "req-1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, holding.SharesOwned)
	assert.InDelta(t, 500, holding.TotalInvested, 0.001)
	assert.InDelta(t, 500, holding.CurrentValue, 0.001)

	var got model.Channel
	require.NoError(t, db.First(&got, channel.ID).Error)
	assert.EqualValues(t, 96, got.AvailableShares)

	var profile model.UserProfile
	require.NoError(t, db.Where("user_id = ?", "user-1").First(&profile).Error)
	assert.InDelta(t, 500, profile.TotalInvested, 0.001)
	assert.InDelta(t, 500, profile.PortfolioValue, 0.001)

	// A second purchase accumulates into the same row.
	holding, err = repo.ApplyPurchase(ctx, PurchaseParams{
		UserID:    "user-1",
		ChannelID: channel.ID,
		Quantity:  2,
		Amount:    250,
		RequestID: "req-2",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 6, holding.SharesOwned)
	assert.InDelta(t, 750, holding.TotalInvested, 0.001)
	assert.InDelta(t, 750, holding.CurrentValue, 0.001)

	var count int64
	require.NoError(t, db.Model(&model.Investment{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, db.First(&got, channel.ID).Error)
	assert.EqualValues(t, 94, got.AvailableShares)

	require.NoError(t, db.Where("user_id = ?", "user-1").First(&profile).Error)
	assert.InDelta(t, 750, profile.TotalInvested, 0.001)
	assert.InDelta(t, 750, profile.PortfolioValue, 0.001)
}

func TestApplyPurchaseInsufficientSharesRollsBack(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	require.NoError(t, db.Model(channel).UpdateColumn("available_shares", 3).Error)

	repo := NewInvestmentRepo(db)
	_, err := repo.ApplyPurchase(context.Background(), PurchaseParams{
		UserID:    "user-1",
		ChannelID: channel.ID,
		Quantity:  5,
		Amount:    625,
		RequestID: "req-1",
	})
	require.ErrorIs(t, err, ErrInsufficientShares)

	// Nothing from the failed purchase may survive.
	var got model.Channel
	require.NoError(t, db.First(&got, channel.ID).Error)
	assert.EqualValues(t, 3, got.AvailableShares)

	var holdings, profiles int64
	require.NoError(t, db.Model(&model.Investment{}).Count(&holdings).Error)
	require.NoError(t, db.Model(&model.UserProfile{}).Count(&profiles).Error)
	assert.Zero(t, holdings)
	assert.Zero(t, profiles)
}

func TestApplyPurchaseLastShares(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	require.NoError(t, db.Model(channel).UpdateColumn("available_shares", 1).Error)

	repo := NewInvestmentRepo(db)
	ctx := context.Background()

	_, err := repo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-1", ChannelID: channel.ID, Quantity: 1, Amount: 125, RequestID: "req-1",
	})
	require.NoError(t, err)

	_, err = repo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-2", ChannelID: channel.ID, Quantity: 1, Amount: 125, RequestID: "req-2",
	})
	require.ErrorIs(t, err, ErrInsufficientShares)

	var got model.Channel
	require.NoError(t, db.First(&got, channel.ID).Error)
	assert.Zero(t, got.AvailableShares)
}

func TestApplyPurchaseInactiveChannel(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	require.NoError(t, db.Model(channel).UpdateColumn("is_active", false).Error)

	repo := NewInvestmentRepo(db)
	_, err := repo.ApplyPurchase(context.Background(), PurchaseParams{
		UserID: "user-1", ChannelID: channel.ID, Quantity: 1, Amount: 125, RequestID: "req-1",
	})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApplyPurchaseDuplicateRequestID(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	repo := NewInvestmentRepo(db)
	ctx := context.Background()

	params := PurchaseParams{
		UserID: "user-1", ChannelID: channel.ID, Quantity: 2, Amount: 250, RequestID: "req-1",
	}
	_, err := repo.ApplyPurchase(ctx, params)
	require.NoError(t, err)

	_, err = repo.ApplyPurchase(ctx, params)
	require.ErrorIs(t, err, ErrDuplicateRequest)

	// The replay must not move inventory or the holding.
	var got model.Channel
	require.NoError(t, db.First(&got, channel.ID).Error)
	assert.EqualValues(t, 98, got.AvailableShares)

	holding, err := repo.GetByUserAndChannel(ctx, "user-1", channel.ID)
	require.NoError(t, err)
	require.NotNil(t, holding)
	assert.EqualValues(t, 2, holding.SharesOwned)
	assert.InDelta(t, 250, holding.TotalInvested, 0.001)
}

func TestSumByUser(t *testing.T) {
	db := newTestDB(t)
	first := seedChannel(t, db, 100, 125)
	second := seedChannel(t, db, 100, 63)
	repo := NewInvestmentRepo(db)
	ctx := context.Background()

	_, err := repo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-1", ChannelID: first.ID, Quantity: 4, Amount: 500, RequestID: "req-1",
	})
	require.NoError(t, err)
	_, err = repo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-1", ChannelID: second.ID, Quantity: 10, Amount: 630, RequestID: "req-2",
	})
	require.NoError(t, err)
	_, err = repo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-2", ChannelID: first.ID, Quantity: 1, Amount: 125, RequestID: "req-3",
	})
	require.NoError(t, err)

	sums, err := repo.SumByUser(ctx)
	require.NoError(t, err)
	require.Len(t, sums, 2)

	byUser := map[string]*LedgerSum{}
	for _, s := range sums {
		byUser[s.UserID] = s
	}
	require.Contains(t, byUser, "user-1")
	require.Contains(t, byUser, "user-2")
	assert.InDelta(t, 1130, byUser["user-1"].TotalInvested, 0.001)
	assert.InDelta(t, 1130, byUser["user-1"].CurrentValue, 0.001)
	assert.InDelta(t, 125, byUser["user-2"].TotalInvested, 0.001)
}

func TestListByUserAndChannels(t *testing.T) {
	db := newTestDB(t)
	first := seedChannel(t, db, 100, 125)
	second := seedChannel(t, db, 100, 63)
	repo := NewInvestmentRepo(db)
	ctx := context.Background()

	_, err := repo.ApplyPurchase(ctx, PurchaseParams{
		UserID: "user-1", ChannelID: first.ID, Quantity: 4, Amount: 500, RequestID: "req-1",
	})
	require.NoError(t, err)

	holdings, err := repo.ListByUserAndChannels(ctx, "user-1", []uint64{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Contains(t, holdings, first.ID)
}
