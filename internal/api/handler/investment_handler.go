package handler

import (
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/pkg/response"
	"TeleInvest/internal/service"

	"github.com/gin-gonic/gin"
)

type InvestmentHandler struct {
	investSvc service.InvestmentService
}

func NewInvestmentHandler(investSvc service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investSvc: investSvc,
	}
}

func (s *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CreateInvestmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	investment, err := s.investSvc.Purchase(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"success": true, "investment": investment})
}

func (s *InvestmentHandler) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	records, err := s.investSvc.History(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}

func (s *InvestmentHandler) ListInvestments(c *gin.Context) {
	userID := c.GetString("user_id")

	investments, err := s.investSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, investments)
}
