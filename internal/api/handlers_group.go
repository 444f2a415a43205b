package api

import "TeleInvest/internal/api/handler"

// HandlersGroup bundles the initialized handlers for the router.
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	ChannelHandler    *handler.ChannelHandler
	InvestmentHandler *handler.InvestmentHandler
	PortfolioHandler  *handler.PortfolioHandler
	WsHandler         *handler.WsHandler
}
