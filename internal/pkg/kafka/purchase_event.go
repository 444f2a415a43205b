package kafka

import "time"

// PurchaseEvent is published after a purchase transaction commits.
// Consumers must treat event_id as the deduplication key.
type PurchaseEvent struct {
	EventID       string    `json:"event_id"`
	RequestID     string    `json:"request_id"`
	UserID        string    `json:"user_id"`
	ChannelID     uint64    `json:"channel_id"`
	Shares        int64     `json:"shares"`
	Amount        float64   `json:"amount"`
	PricePerShare float64   `json:"price_per_share"`
	PurchasedAt   time.Time `json:"purchased_at"`
}
