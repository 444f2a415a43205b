package dto

// PortfolioItem is one holding joined with its channel and valuated on
// read.
type PortfolioItem struct {
	Investment           InvestmentItem `json:"investment"`
	Channel              ChannelBrief   `json:"channel"`
	ProfitLoss           float64        `json:"profit_loss"`
	ProfitLossPercentage float64        `json:"profit_loss_percentage"`
}

// PortfolioSummary aggregates the whole portfolio.
type PortfolioSummary struct {
	TotalValue                float64 `json:"total_value"`
	TotalInvested             float64 `json:"total_invested"`
	TotalEarnings             float64 `json:"total_earnings"`
	TotalProfitLoss           float64 `json:"total_profit_loss"`
	TotalProfitLossPercentage float64 `json:"total_profit_loss_percentage"`
}

// PortfolioResp carries all positions plus the aggregated totals.
type PortfolioResp struct {
	Items   []*PortfolioItem `json:"items"`
	Summary PortfolioSummary `json:"summary"`
}
