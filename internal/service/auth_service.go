package service

import (
	"TeleInvest/internal/api/config"
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/redis"
	"TeleInvest/internal/pkg/security"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// AuthService fronts the hosted users service. Sessions are issued and
// destroyed remotely; token validation itself happens locally against the
// shared session secret.
type AuthService interface {
	GetRedirectURL(ctx context.Context, provider string) (string, error)
	ExchangeCode(ctx context.Context, code string) (string, error)
	CurrentUser(ctx context.Context, sessionToken string) (*dto.UserInfo, error)
	Logout(ctx context.Context, sessionToken string) error
}

type authService struct {
	client *resty.Client
}

func NewAuthService() AuthService {
	cfg := config.Cfg.Users
	client := resty.New().
		SetBaseURL(cfg.ApiURL).
		SetHeader("x-api-key", cfg.ApiKey).
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return &authService{client: client}
}

type redirectURLResp struct {
	RedirectURL string `json:"redirect_url"`
}

type sessionResp struct {
	SessionToken string `json:"session_token"`
}

func (s *authService) GetRedirectURL(ctx context.Context, provider string) (string, error) {
	var body redirectURLResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/oauth/%s/redirect_url", provider))
	if err != nil {
		log.ErrorContext(ctx, "users service redirect_url failed", "err", err)
		return "", ErrStoreUnavailable
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "users service redirect_url rejected", "status", resp.StatusCode())
		return "", ErrStoreUnavailable
	}
	return body.RedirectURL, nil
}

func (s *authService) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", ErrMissingAuthCode
	}

	var body sessionResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"code": code}).
		SetResult(&body).
		Post("/sessions")
	if err != nil {
		log.ErrorContext(ctx, "session exchange failed", "err", err)
		return "", ErrStoreUnavailable
	}
	if resp.IsError() || body.SessionToken == "" {
		return "", ErrUnauthorized
	}
	return body.SessionToken, nil
}

func (s *authService) CurrentUser(ctx context.Context, sessionToken string) (*dto.UserInfo, error) {
	var user dto.UserInfo
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(sessionToken).
		SetResult(&user).
		Get("/users/me")
	if err != nil {
		log.ErrorContext(ctx, "users service me failed", "err", err)
		return nil, ErrStoreUnavailable
	}
	if resp.IsError() {
		return nil, ErrUnauthorized
	}
	return &user, nil
}

// Logout destroys the remote session and marks the token revoked locally
// so it stops passing auth before its expiry.
func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if sig, err := security.ExtractSignature(sessionToken); err == nil {
		ttl := time.Duration(config.Cfg.Users.CookieMaxAge) * time.Second
		if err := redis.SetWithExpiration(ctx, consts.SessionRevokedKey+sig, "1", ttl); err != nil {
			log.WarnContext(ctx, "session revocation mark failed", "err", err)
		}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(sessionToken).
		Delete("/sessions")
	if err != nil {
		log.ErrorContext(ctx, "remote session delete failed", "err", err)
		return nil
	}
	if resp.IsError() {
		log.WarnContext(ctx, "remote session delete rejected", "status", resp.StatusCode())
	}
	return nil
}
