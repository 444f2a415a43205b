package model

import "time"

// Channel is a tradable Telegram channel with its share inventory.
// available_shares never exceeds total_shares and never goes negative;
// the conditional decrement in the repository is the single point of
// truth for that invariant.
type Channel struct {
	ID              uint64  `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"type:varchar(120);not null" json:"name"`
	Description     *string `gorm:"type:varchar(500)" json:"description"`
	AvatarURL       *string `gorm:"type:varchar(500)" json:"avatar_url"`
	SubscriberCount int64   `gorm:"not null;default:0;index:idx_subscribers,sort:desc" json:"subscriber_count"`
	DailyReach      int64   `gorm:"not null;default:0" json:"daily_reach"`
	CPM             float64 `gorm:"type:decimal(10,2);not null;default:0" json:"cpm"`
	MonthlyRevenue  float64 `gorm:"type:decimal(15,2);not null;default:0" json:"monthly_revenue"`
	GrowthRate      float64 `gorm:"type:decimal(6,2);not null;default:0" json:"growth_rate"`
	TotalShares     int64   `gorm:"not null" json:"total_shares"`
	AvailableShares int64   `gorm:"not null" json:"available_shares"`
	PricePerShare   float64 `gorm:"type:decimal(15,2);not null" json:"price_per_share"`
	IsActive        bool    `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Channel) TableName() string {
	return "channels"
}
