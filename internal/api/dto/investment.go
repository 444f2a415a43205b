package dto

import "time"

// CreateInvestmentReq is the body of POST /api/invest. RequestID is the
// client-supplied idempotency key; retries with the same id are safe.
type CreateInvestmentReq struct {
	ChannelID   uint64  `json:"channel_id" binding:"required"`
	SharesToBuy int64   `json:"shares_to_buy" binding:"required,min=1"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	RequestID   string  `json:"request_id" binding:"required,max=64"`
}

type InvestmentItem struct {
	ID            uint64    `json:"id"`
	UserID        string    `json:"user_id"`
	ChannelID     uint64    `json:"channel_id"`
	SharesOwned   int64     `json:"shares_owned"`
	TotalInvested float64   `json:"total_invested"`
	CurrentValue  float64   `json:"current_value"`
	TotalEarnings float64   `json:"total_earnings"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
