package service

import (
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/model"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/es"
	"TeleInvest/internal/pkg/minio"
	"TeleInvest/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type ChannelService interface {
	// ListActive returns active channels newest-subscriber-first, each with
	// the caller's holding attached when userID is not empty.
	ListActive(ctx context.Context, userID string) ([]*dto.ChannelItem, error)
	GetDetail(ctx context.Context, userID string, channelID uint64) (*dto.ChannelItem, error)
	Search(ctx context.Context, keyword string) ([]*dto.ChannelBrief, error)
	Create(ctx context.Context, req *dto.CreateChannelReq) (*dto.ChannelItem, error)
	UploadAvatar(ctx context.Context, channelID uint64, file *multipart.FileHeader) (string, error)
	SeedDemo(ctx context.Context) (int, error)
}

type channelService struct {
	channelRepo repository.ChannelRepo
	investRepo  repository.InvestmentRepo
	searchRepo  es.ChannelRepo
	cache       ChannelCache
}

const maxSearchResults = 20

func NewChannelService(channelRepo repository.ChannelRepo, investRepo repository.InvestmentRepo, searchRepo es.ChannelRepo, cache ChannelCache) ChannelService {
	return &channelService{
		channelRepo: channelRepo,
		investRepo:  investRepo,
		searchRepo:  searchRepo,
		cache:       cache,
	}
}

func (s *channelService) ListActive(ctx context.Context, userID string) ([]*dto.ChannelItem, error) {
	channels, ok := s.cache.GetList(ctx)
	if !ok {
		var err error
		channels, err = s.channelRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SetList(ctx, channels)
	}

	items := make([]*dto.ChannelItem, 0, len(channels))
	for _, channel := range channels {
		item := &dto.ChannelItem{}
		if err := copier.Copy(item, channel); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if userID == "" || len(items) == 0 {
		return items, nil
	}

	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	holdings, err := s.investRepo.ListByUserAndChannels(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if holding, ok := holdings[item.ID]; ok {
			investment := &dto.InvestmentItem{}
			if err := copier.Copy(investment, holding); err != nil {
				return nil, err
			}
			item.UserInvestment = investment
		}
	}
	return items, nil
}

func (s *channelService) GetDetail(ctx context.Context, userID string, channelID uint64) (*dto.ChannelItem, error) {
	channel, ok := s.cache.GetDetail(ctx, channelID)
	if !ok {
		var err error
		channel, err = s.channelRepo.GetActive(ctx, channelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrChannelNotFound
			}
			return nil, err
		}
		s.cache.SetDetail(ctx, channel)
	}

	item := &dto.ChannelItem{}
	if err := copier.Copy(item, channel); err != nil {
		return nil, err
	}

	if userID != "" {
		holding, err := s.investRepo.GetByUserAndChannel(ctx, userID, channelID)
		if err != nil {
			return nil, err
		}
		if holding != nil {
			investment := &dto.InvestmentItem{}
			if err := copier.Copy(investment, holding); err != nil {
				return nil, err
			}
			item.UserInvestment = investment
		}
	}
	return item, nil
}

func (s *channelService) Search(ctx context.Context, keyword string) ([]*dto.ChannelBrief, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []*dto.ChannelBrief{}, nil
	}

	docs, err := s.searchRepo.Search(ctx, keyword, maxSearchResults)
	if err != nil {
		log.ErrorContext(ctx, "channel search failed", "keyword", keyword, "err", err)
		return nil, ErrStoreUnavailable
	}

	briefs := make([]*dto.ChannelBrief, 0, len(docs))
	for _, doc := range docs {
		brief := &dto.ChannelBrief{}
		if err := copier.Copy(brief, doc); err != nil {
			return nil, err
		}
		briefs = append(briefs, brief)
	}
	return briefs, nil
}

func (s *channelService) Create(ctx context.Context, req *dto.CreateChannelReq) (*dto.ChannelItem, error) {
	channel := &model.Channel{}
	if err := copier.Copy(channel, req); err != nil {
		return nil, err
	}
	channel.AvailableShares = channel.TotalShares
	channel.IsActive = true

	if err := s.channelRepo.Create(ctx, channel); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, channel.ID)
	s.index(ctx, channel)

	item := &dto.ChannelItem{}
	if err := copier.Copy(item, channel); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *channelService) UploadAvatar(ctx context.Context, channelID uint64, file *multipart.FileHeader) (string, error) {
	channel, err := s.channelRepo.GetActive(ctx, channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrChannelNotFound
		}
		return "", err
	}

	if file.Size > consts.AvatarMaxSize {
		return "", ErrFileNotSupported
	}
	src, err := file.Open()
	if err != nil {
		return "", ErrFileNotSupported
	}
	defer src.Close()

	objectName := fmt.Sprintf("channel-%d-%s.jpg", channelID, uuid.NewString())
	url, err := minio.UploadAvatar(ctx, src, objectName, consts.AvatarThumbSize)
	if err != nil {
		if errors.Is(err, minio.ErrUnsupportedImage) {
			return "", ErrFileNotSupported
		}
		log.ErrorContext(ctx, "avatar upload failed", "channel_id", channelID, "err", err)
		return "", ErrStoreUnavailable
	}

	if err := s.channelRepo.UpdateAvatar(ctx, channelID, url); err != nil {
		return "", err
	}
	channel.AvatarURL = &url
	s.cache.Invalidate(ctx, channelID)
	s.index(ctx, channel)
	return url, nil
}

// SeedDemo inserts the demo catalog once. It is a no-op when channels exist.
func (s *channelService) SeedDemo(ctx context.Context) (int, error) {
	count, err := s.channelRepo.CountActive(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	channels := seedChannels()
	if err := s.channelRepo.CreateBatch(ctx, channels); err != nil {
		return 0, err
	}
	for _, channel := range channels {
		s.index(ctx, channel)
	}
	return len(channels), nil
}

func (s *channelService) index(ctx context.Context, channel *model.Channel) {
	if s.searchRepo == nil {
		return
	}
	doc := &es.ChannelES{}
	if err := copier.Copy(doc, channel); err != nil {
		log.ErrorContext(ctx, "channel index mapping failed", "channel_id", channel.ID, "err", err)
		return
	}
	if err := s.searchRepo.IndexChannel(ctx, doc); err != nil {
		log.ErrorContext(ctx, "channel index failed", "channel_id", channel.ID, "err", err)
	}
}

func strPtr(s string) *string { return &s }

func seedChannels() []*model.Channel {
	return []*model.Channel{
		{
			Name:            "Tech News Daily",
			Description:     strPtr("Ежедневные новости из мира технологий"),
			AvatarURL:       strPtr("https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=150&h=150&fit=crop&crop=face"),
			SubscriberCount: 125000,
			DailyReach:      85000,
			CPM:             45.0,
			MonthlyRevenue:  12500.0,
			GrowthRate:      8.5,
			TotalShares:     100,
			AvailableShares: 100,
			PricePerShare:   125.0,
			IsActive:        true,
		},
		{
			Name:            "Crypto Analytics",
			Description:     strPtr("Аналитика и прогнозы криптовалют"),
			AvatarURL:       strPtr("https://images.unsplash.com/photo-1621761191319-c6fb62004040?w=150&h=150&fit=crop&crop=face"),
			SubscriberCount: 89000,
			DailyReach:      62000,
			CPM:             38.0,
			MonthlyRevenue:  9800.0,
			GrowthRate:      12.3,
			TotalShares:     100,
			AvailableShares: 100,
			PricePerShare:   98.0,
			IsActive:        true,
		},
		{
			Name:            "Business Insider",
			Description:     strPtr("Инсайды из мира бизнеса и стартапов"),
			AvatarURL:       strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"),
			SubscriberCount: 156000,
			DailyReach:      110000,
			CPM:             52.0,
			MonthlyRevenue:  18700.0,
			GrowthRate:      6.8,
			TotalShares:     100,
			AvailableShares: 100,
			PricePerShare:   187.0,
			IsActive:        true,
		},
		{
			Name:            "Health & Wellness",
			Description:     strPtr("Советы по здоровью и здоровому образу жизни"),
			AvatarURL:       strPtr("https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face"),
			SubscriberCount: 73000,
			DailyReach:      45000,
			CPM:             28.0,
			MonthlyRevenue:  6300.0,
			GrowthRate:      15.2,
			TotalShares:     100,
			AvailableShares: 100,
			PricePerShare:   63.0,
			IsActive:        true,
		},
	}
}
