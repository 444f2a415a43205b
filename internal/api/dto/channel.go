package dto

import "time"

// ChannelItem mirrors the channels table for API responses, with the
// caller's own holding joined in when one exists.
type ChannelItem struct {
	ID              uint64          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	AvatarURL       *string         `json:"avatar_url"`
	SubscriberCount int64           `json:"subscriber_count"`
	DailyReach      int64           `json:"daily_reach"`
	CPM             float64         `json:"cpm"`
	MonthlyRevenue  float64         `json:"monthly_revenue"`
	GrowthRate      float64         `json:"growth_rate"`
	TotalShares     int64           `json:"total_shares"`
	AvailableShares int64           `json:"available_shares"`
	PricePerShare   float64         `json:"price_per_share"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	UserInvestment  *InvestmentItem `json:"user_investment"`
}

// ChannelBrief is the subset of channel fields shown on portfolio rows.
type ChannelBrief struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	AvatarURL      *string `json:"avatar_url"`
	PricePerShare  float64 `json:"price_per_share"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	GrowthRate     float64 `json:"growth_rate"`
}

type CreateChannelReq struct {
	Name            string  `json:"name" binding:"required,min=1,max=120"`
	Description     string  `json:"description" binding:"max=500"`
	AvatarURL       string  `json:"avatar_url" binding:"omitempty,url"`
	SubscriberCount int64   `json:"subscriber_count" binding:"min=0"`
	DailyReach      int64   `json:"daily_reach" binding:"min=0"`
	CPM             float64 `json:"cpm" binding:"min=0"`
	MonthlyRevenue  float64 `json:"monthly_revenue" binding:"min=0"`
	GrowthRate      float64 `json:"growth_rate"`
	TotalShares     int64   `json:"total_shares" binding:"required,min=1"`
	PricePerShare   float64 `json:"price_per_share" binding:"required,gt=0"`
}
