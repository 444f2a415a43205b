package model

import "time"

// Investment is a user's cumulative holding in one channel. One row per
// (user, channel); shares_owned only ever grows, there is no sell path.
type Investment struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_channel,priority:1" json:"user_id"`
	ChannelID     uint64    `gorm:"not null;uniqueIndex:idx_user_channel,priority:2;index" json:"channel_id"`
	SharesOwned   int64     `gorm:"not null" json:"shares_owned"`
	TotalInvested float64   `gorm:"type:decimal(15,2);not null" json:"total_invested"`
	CurrentValue  float64   `gorm:"type:decimal(15,2);not null" json:"current_value"`
	TotalEarnings float64   `gorm:"type:decimal(15,2);not null;default:0" json:"total_earnings"`
	PurchaseDate  time.Time `gorm:"not null" json:"purchase_date"`
	// LastRequestID keeps the most recently applied idempotency key as
	// a second-line guard behind the redis SETNX check.
	LastRequestID string    `gorm:"type:varchar(64);not null;default:''" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Investment) TableName() string {
	return "investments"
}
