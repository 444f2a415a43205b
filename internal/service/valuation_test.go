package service

import (
	"TeleInvest/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuate(t *testing.T) {
	tests := []struct {
		name    string
		holding model.Investment
		wantPL  float64
		wantPct float64
	}{
		{
			name:    "break even",
			holding: model.Investment{TotalInvested: 500, CurrentValue: 500},
			wantPL:  0,
			wantPct: 0,
		},
		{
			name:    "gain from price",
			holding: model.Investment{TotalInvested: 500, CurrentValue: 600},
			wantPL:  100,
			wantPct: 20,
		},
		{
			name:    "earnings count as profit",
			holding: model.Investment{TotalInvested: 500, CurrentValue: 500, TotalEarnings: 50},
			wantPL:  50,
			wantPct: 10,
		},
		{
			name:    "loss",
			holding: model.Investment{TotalInvested: 500, CurrentValue: 400},
			wantPL:  -100,
			wantPct: -20,
		},
		{
			name:    "zero invested avoids division",
			holding: model.Investment{TotalInvested: 0, CurrentValue: 0, TotalEarnings: 25},
			wantPL:  25,
			wantPct: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Valuate(&tt.holding)
			assert.InDelta(t, tt.wantPL, v.ProfitLoss, 0.001)
			assert.InDelta(t, tt.wantPct, v.ProfitLossPercentage, 0.001)
		})
	}
}

func TestSummarize(t *testing.T) {
	holdings := []*model.Investment{
		{TotalInvested: 500, CurrentValue: 600, TotalEarnings: 10},
		{TotalInvested: 250, CurrentValue: 200},
	}

	summary := Summarize(holdings)
	assert.InDelta(t, 800, summary.TotalValue, 0.001)
	assert.InDelta(t, 750, summary.TotalInvested, 0.001)
	assert.InDelta(t, 10, summary.TotalEarnings, 0.001)
	assert.InDelta(t, 60, summary.TotalProfitLoss, 0.001)
	assert.InDelta(t, 8, summary.TotalProfitLossPercentage, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.TotalValue)
	assert.Zero(t, summary.TotalProfitLossPercentage)
}
