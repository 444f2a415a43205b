package handler

import (
	"TeleInvest/internal/pkg/response"
	"TeleInvest/internal/service"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioSvc service.PortfolioService
	profileSvc   service.ProfileService
}

func NewPortfolioHandler(portfolioSvc service.PortfolioService, profileSvc service.ProfileService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioSvc: portfolioSvc,
		profileSvc:   profileSvc,
	}
}

func (s *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID := c.GetString("user_id")

	portfolio, err := s.portfolioSvc.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, portfolio)
}

func (s *PortfolioHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := s.profileSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}
