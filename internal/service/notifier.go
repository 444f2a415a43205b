package service

import (
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/kafka"
	"TeleInvest/internal/pkg/redis"
	"context"

	"github.com/goccy/go-json"
)

// PurchasePublisher hands a confirmed purchase to the event pipeline.
// *kafka.Producer satisfies it.
type PurchasePublisher interface {
	PublishPurchase(event *kafka.PurchaseEvent)
}

// InventoryUpdate is pushed to websocket subscribers after a purchase.
type InventoryUpdate struct {
	ChannelID       uint64 `json:"channel_id"`
	AvailableShares int64  `json:"available_shares"`
}

// InventoryNotifier fans inventory changes out to live subscribers.
type InventoryNotifier interface {
	NotifyInventory(ctx context.Context, update *InventoryUpdate)
}

type redisInventoryNotifier struct{}

func NewRedisInventoryNotifier() InventoryNotifier {
	return &redisInventoryNotifier{}
}

func (s *redisInventoryNotifier) NotifyInventory(ctx context.Context, update *InventoryUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		return
	}
	_ = redis.Publish(ctx, consts.ChannelUpdateChan, payload)
}
