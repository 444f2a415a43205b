package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActiveOrdersAndFilters(t *testing.T) {
	db := newTestDB(t)
	small := seedChannel(t, db, 100, 63)
	require.NoError(t, db.Model(small).UpdateColumn("subscriber_count", 73000).Error)
	big := seedChannel(t, db, 100, 187)
	require.NoError(t, db.Model(big).UpdateColumn("subscriber_count", 156000).Error)
	hidden := seedChannel(t, db, 100, 98)
	require.NoError(t, db.Model(hidden).UpdateColumn("is_active", false).Error)

	repo := NewChannelRepo(db)
	channels, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, big.ID, channels[0].ID)
	assert.Equal(t, small.ID, channels[1].ID)
}

func TestGetActiveHidesInactive(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 100, 125)
	require.NoError(t, db.Model(channel).UpdateColumn("is_active", false).Error)

	repo := NewChannelRepo(db)
	_, err := repo.GetActive(context.Background(), channel.ID)
	require.Error(t, err)
}

func TestReserveShares(t *testing.T) {
	db := newTestDB(t)
	channel := seedChannel(t, db, 10, 125)
	repo := NewChannelRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReserveShares(ctx, channel.ID, 10))

	// Inventory is exhausted; any further reservation fails and leaves
	// the counter at zero.
	err := repo.ReserveShares(ctx, channel.ID, 1)
	require.ErrorIs(t, err, ErrInsufficientShares)

	got, err := repo.GetActive(ctx, channel.ID)
	require.NoError(t, err)
	assert.Zero(t, got.AvailableShares)
}
