package service

import (
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/redis"
	"context"
	"time"
)

const requestClaimTTL = 24 * time.Hour

// RequestDeduper claims a purchase request id before the ledger write so
// client retries of the same request cannot double-book.
type RequestDeduper interface {
	Claim(ctx context.Context, userID, requestID string) (bool, error)
	Release(ctx context.Context, userID, requestID string)
}

type redisRequestDeduper struct{}

func NewRedisRequestDeduper() RequestDeduper {
	return &redisRequestDeduper{}
}

func requestClaimKey(userID, requestID string) string {
	return consts.InvestRequestKey + userID + ":" + requestID
}

func (s *redisRequestDeduper) Claim(ctx context.Context, userID, requestID string) (bool, error) {
	return redis.SetNX(ctx, requestClaimKey(userID, requestID), "1", requestClaimTTL)
}

// Release frees the claim when the purchase never reached the ledger, so a
// retry with the same request id can still succeed.
func (s *redisRequestDeduper) Release(ctx context.Context, userID, requestID string) {
	_ = redis.DeleteKey(ctx, requestClaimKey(userID, requestID))
}
