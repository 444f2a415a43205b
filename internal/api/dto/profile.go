package dto

import "time"

// ProfileItem is the investor rollup returned by GET /api/profile.
type ProfileItem struct {
	ID             uint64    `json:"id"`
	UserID         string    `json:"user_id"`
	TotalInvested  float64   `json:"total_invested"`
	TotalEarnings  float64   `json:"total_earnings"`
	PortfolioValue float64   `json:"portfolio_value"`
	InvestorLevel  int       `json:"investor_level"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
