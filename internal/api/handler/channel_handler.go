package handler

import (
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/pkg/response"
	"TeleInvest/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelSvc service.ChannelService
}

func NewChannelHandler(channelSvc service.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		channelSvc: channelSvc,
	}
}

func (s *ChannelHandler) ListChannels(c *gin.Context) {
	userID := c.GetString("user_id")

	channels, err := s.channelSvc.ListActive(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channels)
}

func (s *ChannelHandler) GetChannel(c *gin.Context) {
	userID := c.GetString("user_id")

	channelID, err := strconv.ParseUint(c.Param("channel_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrChannelNotFound)
		return
	}

	channel, err := s.channelSvc.GetDetail(c.Request.Context(), userID, channelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channel)
}

func (s *ChannelHandler) SearchChannels(c *gin.Context) {
	keyword := c.Query("q")

	channels, err := s.channelSvc.Search(c.Request.Context(), keyword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channels)
}

func (s *ChannelHandler) CreateChannel(c *gin.Context) {
	var req dto.CreateChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	channel, err := s.channelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channel)
}

func (s *ChannelHandler) UploadAvatar(c *gin.Context) {
	channelID, err := strconv.ParseUint(c.Param("channel_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrChannelNotFound)
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	url, err := s.channelSvc.UploadAvatar(c.Request.Context(), channelID, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"avatar_url": url})
}

func (s *ChannelHandler) SeedChannels(c *gin.Context) {
	created, err := s.channelSvc.SeedDemo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"success": true, "created": created})
}
