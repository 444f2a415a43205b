package service

import (
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/model"
	"TeleInvest/internal/repository"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type noopCache struct{}

func (noopCache) GetList(context.Context) ([]*model.Channel, bool)         { return nil, false }
func (noopCache) SetList(context.Context, []*model.Channel)                {}
func (noopCache) GetDetail(context.Context, uint64) (*model.Channel, bool) { return nil, false }
func (noopCache) SetDetail(context.Context, *model.Channel)                {}
func (noopCache) Invalidate(context.Context, uint64)                       {}

type stubDeduper struct {
	claim    bool
	released bool
}

func (s *stubDeduper) Claim(context.Context, string, string) (bool, error) { return s.claim, nil }
func (s *stubDeduper) Release(context.Context, string, string)             { s.released = true }

func newPurchaseFixture(t *testing.T) (*gorm.DB, *model.Channel, *stubDeduper, InvestmentService) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Channel{}, &model.Investment{}, &model.UserProfile{}))

	channel := &model.Channel{
		Name:            "Tech News Daily",
		TotalShares:     100,
		AvailableShares: 100,
		PricePerShare:   125,
		IsActive:        true,
	}
	require.NoError(t, db.Create(channel).Error)

	deduper := &stubDeduper{claim: true}
	svc := NewInvestmentService(
		repository.NewChannelRepo(db),
		repository.NewInvestmentRepo(db),
		nil,
		deduper,
		nil,
		nil,
		noopCache{},
	)
	return db, channel, deduper, svc
}

func TestPurchase(t *testing.T) {
	db, channel, _, svc := newPurchaseFixture(t)

	item, err := svc.Purchase(context.Background(), "user-1", &dto.CreateInvestmentReq{
		ChannelID:   channel.ID,
		SharesToBuy: 4,
		Amount:      500,
		RequestID:   "req-1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, item.SharesOwned)
	assert.InDelta(t, 500, item.TotalInvested, 0.001)
	assert.InDelta(t, 500, item.CurrentValue, 0.001)

	var got model.Channel
	require.NoError(t, db.First(&got, channel.ID).Error)
	assert.EqualValues(t, 96, got.AvailableShares)
}

func TestPurchaseToleratesRoundingOnly(t *testing.T) {
	_, channel, _, svc := newPurchaseFixture(t)
	ctx := context.Background()

	// Within the rounding tolerance.
	_, err := svc.Purchase(ctx, "user-1", &dto.CreateInvestmentReq{
		ChannelID:   channel.ID,
		SharesToBuy: 4,
		Amount:      500.005,
		RequestID:   "req-1",
	})
	require.NoError(t, err)

	// Beyond it.
	_, err = svc.Purchase(ctx, "user-1", &dto.CreateInvestmentReq{
		ChannelID:   channel.ID,
		SharesToBuy: 4,
		Amount:      500.02,
		RequestID:   "req-2",
	})
	require.ErrorIs(t, err, ErrAmountMismatch)
}

func TestPurchaseInvalidQuantity(t *testing.T) {
	_, channel, _, svc := newPurchaseFixture(t)

	_, err := svc.Purchase(context.Background(), "user-1", &dto.CreateInvestmentReq{
		ChannelID:   channel.ID,
		SharesToBuy: 0,
		Amount:      0,
		RequestID:   "req-1",
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPurchaseUnknownChannel(t *testing.T) {
	_, _, _, svc := newPurchaseFixture(t)

	_, err := svc.Purchase(context.Background(), "user-1", &dto.CreateInvestmentReq{
		ChannelID:   9999,
		SharesToBuy: 1,
		Amount:      125,
		RequestID:   "req-1",
	})
	require.ErrorIs(t, err, ErrChannelNotFound)
}

func TestPurchaseInsufficientSharesReleasesClaim(t *testing.T) {
	db, channel, deduper, svc := newPurchaseFixture(t)
	require.NoError(t, db.Model(channel).UpdateColumn("available_shares", 2).Error)

	_, err := svc.Purchase(context.Background(), "user-1", &dto.CreateInvestmentReq{
		ChannelID:   channel.ID,
		SharesToBuy: 5,
		Amount:      625,
		RequestID:   "req-1",
	})
	require.ErrorIs(t, err, ErrInsufficientShares)
	// The request id must stay usable for a corrected retry.
	assert.True(t, deduper.released)
}

func TestPurchaseDuplicateRequest(t *testing.T) {
	_, channel, deduper, svc := newPurchaseFixture(t)
	deduper.claim = false

	_, err := svc.Purchase(context.Background(), "user-1", &dto.CreateInvestmentReq{
		ChannelID:   channel.ID,
		SharesToBuy: 4,
		Amount:      500,
		RequestID:   "req-1",
	})
	require.ErrorIs(t, err, ErrDuplicateRequest)
	assert.False(t, deduper.released)
}

func TestPurchaseLedgerDuplicateKeepsClaim(t *testing.T) {
	_, channel, deduper, svc := newPurchaseFixture(t)
	ctx := context.Background()

	req := &dto.CreateInvestmentReq{
		ChannelID:   channel.ID,
		SharesToBuy: 4,
		Amount:      500,
		RequestID:   "req-1",
	}
	_, err := svc.Purchase(ctx, "user-1", req)
	require.NoError(t, err)

	// Simulates a retry that slipped past the redis claim.
	_, err = svc.Purchase(ctx, "user-1", req)
	require.ErrorIs(t, err, ErrDuplicateRequest)
	assert.False(t, deduper.released)
}
