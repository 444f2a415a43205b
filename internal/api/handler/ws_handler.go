package handler

import (
	"TeleInvest/internal/api/config"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/redis"
	"TeleInvest/internal/pkg/response"
	"TeleInvest/internal/pkg/security"
	"TeleInvest/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler streams live inventory updates so open channel pages see
// available_shares drop as other users buy.
type WsHandler struct{}

func NewWsHandler() *WsHandler {
	return &WsHandler{}
}

func (s *WsHandler) Connect(c *gin.Context) {
	// Browsers cannot set headers on websocket requests, the token rides
	// in the query string.
	token := c.Query("token")
	if token == "" {
		if cookie, err := c.Cookie(config.Cfg.Users.CookieName); err == nil {
			token = cookie
		}
	}
	if token == "" {
		response.Error(c, service.ErrUnauthorized)
		return
	}
	claims, err := security.ValidateSessionToken(token)
	if err != nil {
		log.Warn("ws auth failed", "err", err)
		response.Error(c, service.ErrUnauthorized)
		return
	}
	userID := claims.UserID()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("ws upgrade failed", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	pubsub := redis.Subscribe(context.Background(), consts.ChannelUpdateChan)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("ws connected", "user_id", userID)

	stopChan := make(chan struct{})

	// Read loop only watches for the client hanging up.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(stopChan)
				return
			}
		}
	}()

	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Error("ws push failed", "user_id", userID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("ws disconnected", "user_id", userID)
			return
		}
	}
}
