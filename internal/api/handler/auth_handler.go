package handler

import (
	"TeleInvest/internal/api/config"
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/pkg/response"
	"TeleInvest/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

func (s *AuthHandler) GetRedirectURL(c *gin.Context) {
	url, err := s.authSvc.GetRedirectURL(c.Request.Context(), "google")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.RedirectURLResp{RedirectURL: url})
}

// CreateSession exchanges the OAuth code for a session token and plants
// it as an http-only cookie. The token itself never reaches frontend JS.
func (s *AuthHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.authSvc.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	cfg := config.Cfg.Users
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cfg.CookieName, token, cfg.CookieMaxAge, "/", "", true, true)

	response.Success(c, gin.H{"success": true})
}

func (s *AuthHandler) Me(c *gin.Context) {
	token := c.GetString("session_token")

	user, err := s.authSvc.CurrentUser(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *AuthHandler) Logout(c *gin.Context) {
	cfg := config.Cfg.Users

	if token, err := c.Cookie(cfg.CookieName); err == nil && token != "" {
		if err := s.authSvc.Logout(c.Request.Context(), token); err != nil {
			response.Error(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", true, true)

	response.Success(c, gin.H{"success": true})
}
