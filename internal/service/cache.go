package service

import (
	"TeleInvest/internal/model"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/redis"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const channelCacheTTL = time.Minute

// ChannelCache is the cache-aside layer in front of channel reads.
// Purchases invalidate it so the inventory shown stays fresh.
type ChannelCache interface {
	GetList(ctx context.Context) ([]*model.Channel, bool)
	SetList(ctx context.Context, channels []*model.Channel)
	GetDetail(ctx context.Context, id uint64) (*model.Channel, bool)
	SetDetail(ctx context.Context, channel *model.Channel)
	Invalidate(ctx context.Context, id uint64)
}

type redisChannelCache struct{}

func NewRedisChannelCache() ChannelCache {
	return &redisChannelCache{}
}

func (s *redisChannelCache) GetList(ctx context.Context) ([]*model.Channel, bool) {
	raw, err := redis.GetValue(ctx, consts.ChannelListKey)
	if err != nil || raw == "" {
		return nil, false
	}

	channels := make([]*model.Channel, 0)
	if err := json.Unmarshal([]byte(raw), &channels); err != nil {
		return nil, false
	}
	return channels, true
}

func (s *redisChannelCache) SetList(ctx context.Context, channels []*model.Channel) {
	payload, err := json.Marshal(channels)
	if err != nil {
		return
	}
	_ = redis.SetWithExpiration(ctx, consts.ChannelListKey, payload, channelCacheTTL)
}

func (s *redisChannelCache) GetDetail(ctx context.Context, id uint64) (*model.Channel, bool) {
	raw, err := redis.GetValue(ctx, consts.ChannelDetailKey+strconv.FormatUint(id, 10))
	if err != nil || raw == "" {
		return nil, false
	}

	var channel model.Channel
	if err := json.Unmarshal([]byte(raw), &channel); err != nil {
		return nil, false
	}
	return &channel, true
}

func (s *redisChannelCache) SetDetail(ctx context.Context, channel *model.Channel) {
	payload, err := json.Marshal(channel)
	if err != nil {
		return
	}
	_ = redis.SetWithExpiration(ctx, consts.ChannelDetailKey+strconv.FormatUint(channel.ID, 10), payload, channelCacheTTL)
}

func (s *redisChannelCache) Invalidate(ctx context.Context, id uint64) {
	_ = redis.DeleteKey(ctx, consts.ChannelListKey)
	_ = redis.DeleteKey(ctx, consts.ChannelDetailKey+strconv.FormatUint(id, 10))
}
