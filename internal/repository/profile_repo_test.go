package repository

import (
	"TeleInvest/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, "user-1"))
	require.NoError(t, repo.Ensure(ctx, "user-1"))

	var count int64
	require.NoError(t, db.Model(&model.UserProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	profile, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 1, profile.InvestorLevel)
	assert.Zero(t, profile.TotalInvested)
}

func TestGetByUserIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)

	profile, err := repo.GetByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestOverwriteReportsDrift(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, "user-1"))

	changed, err := repo.Overwrite(ctx, "user-1", 500, 500, 0)
	require.NoError(t, err)
	assert.True(t, changed)

	// Writing the same values again reports no drift.
	changed, err = repo.Overwrite(ctx, "user-1", 500, 500, 0)
	require.NoError(t, err)
	assert.False(t, changed)

	profile, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 500, profile.TotalInvested, 0.001)
	assert.InDelta(t, 500, profile.PortfolioValue, 0.001)
}
