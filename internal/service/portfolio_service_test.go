package service

import (
	"TeleInvest/internal/model"
	"TeleInvest/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPortfolio(t *testing.T) {
	db, channel, _, _ := newPurchaseFixture(t)
	investRepo := repository.NewInvestmentRepo(db)
	channelRepo := repository.NewChannelRepo(db)
	svc := NewPortfolioService(investRepo, channelRepo)
	ctx := context.Background()

	_, err := investRepo.ApplyPurchase(ctx, repository.PurchaseParams{
		UserID: "user-1", ChannelID: channel.ID, Quantity: 4, Amount: 500, RequestID: "req-1",
	})
	require.NoError(t, err)

	// Credit some earnings so profit shows up without a price move.
	require.NoError(t, db.Model(&model.Investment{}).
		Where("user_id = ?", "user-1").
		UpdateColumn("total_earnings", 50).Error)

	portfolio, err := svc.GetPortfolio(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, portfolio.Items, 1)

	item := portfolio.Items[0]
	assert.Equal(t, channel.ID, item.Channel.ID)
	assert.EqualValues(t, 4, item.Investment.SharesOwned)
	assert.InDelta(t, 50, item.ProfitLoss, 0.001)
	assert.InDelta(t, 10, item.ProfitLossPercentage, 0.001)

	assert.InDelta(t, 500, portfolio.Summary.TotalValue, 0.001)
	assert.InDelta(t, 500, portfolio.Summary.TotalInvested, 0.001)
	assert.InDelta(t, 50, portfolio.Summary.TotalEarnings, 0.001)
	assert.InDelta(t, 50, portfolio.Summary.TotalProfitLoss, 0.001)
}

func TestGetPortfolioEmpty(t *testing.T) {
	db, _, _, _ := newPurchaseFixture(t)
	svc := NewPortfolioService(repository.NewInvestmentRepo(db), repository.NewChannelRepo(db))

	portfolio, err := svc.GetPortfolio(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, portfolio.Items)
	assert.Zero(t, portfolio.Summary.TotalValue)
}
