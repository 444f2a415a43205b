package model

import "time"

// EarningsDistribution journals one monthly payout per channel. The
// unique (channel_id, period) index makes the distribution job
// idempotent across restarts.
type EarningsDistribution struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ChannelID      uint64    `gorm:"not null;uniqueIndex:idx_channel_period,priority:1" json:"channel_id"`
	Period         string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_channel_period,priority:2" json:"period"`
	AmountPerShare float64   `gorm:"type:decimal(15,4);not null" json:"amount_per_share"`
	CreatedAt      time.Time `json:"created_at"`
}

func (EarningsDistribution) TableName() string {
	return "earnings_distributions"
}
