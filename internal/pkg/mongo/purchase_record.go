package mongo

import "time"

// PurchaseRecord is one immutable journal entry per applied purchase.
// The journal is an audit trail materialized from the Kafka purchase
// topic; it is never read on the serving path.
type PurchaseRecord struct {
	EventID       string    `bson:"event_id"`
	RequestID     string    `bson:"request_id"`
	UserID        string    `bson:"user_id"`
	ChannelID     uint64    `bson:"channel_id"`
	Shares        int64     `bson:"shares"`
	Amount        float64   `bson:"amount"`
	PricePerShare float64   `bson:"price_per_share"`
	PurchasedAt   time.Time `bson:"purchased_at"`
	RecordedAt    time.Time `bson:"recorded_at"`
}
