package service

import "TeleInvest/internal/model"

// Valuation is the derived profit/loss view of a holding. It is
// recomputed on every read and never stored.
type Valuation struct {
	ProfitLoss           float64 `json:"profit_loss"`
	ProfitLossPercentage float64 `json:"profit_loss_percentage"`
}

// PortfolioSummary folds the per-holding valuations into totals.
type PortfolioSummary struct {
	TotalValue               float64 `json:"total_value"`
	TotalInvested            float64 `json:"total_invested"`
	TotalEarnings            float64 `json:"total_earnings"`
	TotalProfitLoss          float64 `json:"total_profit_loss"`
	TotalProfitLossPercentage float64 `json:"total_profit_loss_percentage"`
}

// Valuate computes the profit/loss of one holding. Pure function; the
// percentage is 0 when nothing has been invested.
func Valuate(holding *model.Investment) Valuation {
	profitLoss := holding.CurrentValue - holding.TotalInvested + holding.TotalEarnings

	var pct float64
	if holding.TotalInvested > 0 {
		pct = profitLoss / holding.TotalInvested * 100
	}

	return Valuation{
		ProfitLoss:           profitLoss,
		ProfitLossPercentage: pct,
	}
}

// Summarize aggregates a set of holdings with the same zero-division
// guard as Valuate.
func Summarize(holdings []*model.Investment) PortfolioSummary {
	var summary PortfolioSummary
	for _, h := range holdings {
		summary.TotalValue += h.CurrentValue
		summary.TotalInvested += h.TotalInvested
		summary.TotalEarnings += h.TotalEarnings
	}

	summary.TotalProfitLoss = summary.TotalValue - summary.TotalInvested + summary.TotalEarnings
	if summary.TotalInvested > 0 {
		summary.TotalProfitLossPercentage = summary.TotalProfitLoss / summary.TotalInvested * 100
	}
	return summary
}
