package api

import (
	"TeleInvest/internal/api/middleware"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		// Session lifecycle, the identity provider does the heavy lifting.
		apiGroup.GET("/oauth/google/redirect_url", group.AuthHandler.GetRedirectURL)
		apiGroup.POST("/sessions", group.AuthHandler.CreateSession)
		apiGroup.GET("/logout", group.AuthHandler.Logout)

		// One-time demo catalog bootstrap; a no-op once channels exist.
		apiGroup.POST("/seed-channels", group.ChannelHandler.SeedChannels)

		searchGroup := apiGroup.Group("")
		searchGroup.Use(middleware.AuthOptionalMiddleware())
		{
			searchGroup.GET("/channels/search", group.ChannelHandler.SearchChannels)
		}

		apiGroup.GET("/ws/channels", group.WsHandler.Connect)

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware())
		{
			authGroup.GET("/users/me", group.AuthHandler.Me)
			authGroup.GET("/channels", group.ChannelHandler.ListChannels)
			authGroup.GET("/channels/:channel_id", group.ChannelHandler.GetChannel)
			authGroup.GET("/investments", group.InvestmentHandler.ListInvestments)
			authGroup.GET("/investments/history", group.InvestmentHandler.GetHistory)
			authGroup.GET("/portfolio", group.PortfolioHandler.GetPortfolio)
			authGroup.GET("/profile", group.PortfolioHandler.GetProfile)

			// Money moves here, keep the full audit trail.
			investGroup := authGroup.Group("")
			investGroup.Use(middleware.AuditMiddleware())
			{
				investGroup.POST("/invest", group.InvestmentHandler.CreateInvestment)
			}

			adminGroup := authGroup.Group("/admin")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("/channels", group.ChannelHandler.CreateChannel)
				adminGroup.POST("/channels/:channel_id/avatar", group.ChannelHandler.UploadAvatar)
			}
		}
	}

	return r
}
