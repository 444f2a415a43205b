package model

import "time"

// UserProfile is the denormalized per-user rollup, created lazily on
// the first authenticated ledger interaction. It is written inside
// ledger transactions and by the reconciliation/earnings jobs only.
type UserProfile struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_profile_user" json:"user_id"`
	InvestorLevel int       `gorm:"not null;default:1" json:"investor_level"`
	TotalInvested float64   `gorm:"type:decimal(15,2);not null;default:0" json:"total_invested"`
	TotalEarnings float64   `gorm:"type:decimal(15,2);not null;default:0" json:"total_earnings"`
	PortfolioValue float64  `gorm:"type:decimal(15,2);not null;default:0" json:"portfolio_value"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
