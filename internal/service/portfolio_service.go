package service

import (
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/model"
	"TeleInvest/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type PortfolioService interface {
	// GetPortfolio joins the user's holdings with their channels and prices
	// each position.
	GetPortfolio(ctx context.Context, userID string) (*dto.PortfolioResp, error)
}

type portfolioService struct {
	investRepo  repository.InvestmentRepo
	channelRepo repository.ChannelRepo
}

func NewPortfolioService(investRepo repository.InvestmentRepo, channelRepo repository.ChannelRepo) PortfolioService {
	return &portfolioService{investRepo: investRepo, channelRepo: channelRepo}
}

func (s *portfolioService) GetPortfolio(ctx context.Context, userID string) (*dto.PortfolioResp, error) {
	holdings, err := s.investRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(holdings))
	for _, holding := range holdings {
		ids = append(ids, holding.ChannelID)
	}
	channels, err := s.channelRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PortfolioItem, 0, len(holdings))
	priced := make([]*model.Investment, 0, len(holdings))
	for _, holding := range holdings {
		channel, ok := channels[holding.ChannelID]
		if !ok {
			// Channel rows are never deleted, but a missing join must not
			// take the whole portfolio down.
			continue
		}

		item := &dto.PortfolioItem{}
		if err := copier.Copy(&item.Investment, holding); err != nil {
			return nil, err
		}
		if err := copier.Copy(&item.Channel, channel); err != nil {
			return nil, err
		}

		v := Valuate(holding)
		item.ProfitLoss = v.ProfitLoss
		item.ProfitLossPercentage = v.ProfitLossPercentage

		items = append(items, item)
		priced = append(priced, holding)
	}

	summary := Summarize(priced)
	resp := &dto.PortfolioResp{Items: items}
	if err := copier.Copy(&resp.Summary, &summary); err != nil {
		return nil, err
	}
	return resp, nil
}
