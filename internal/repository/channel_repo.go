package repository

import (
	"TeleInvest/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrInsufficientShares is returned when a reservation asks for more
// shares than the channel has left.
var ErrInsufficientShares = errors.New("insufficient available shares")

type ChannelRepo interface {
	ListActive(ctx context.Context) ([]*model.Channel, error)
	GetActive(ctx context.Context, id uint64) (*model.Channel, error)
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*model.Channel, error)
	Create(ctx context.Context, channel *model.Channel) error
	CreateBatch(ctx context.Context, channels []*model.Channel) error
	UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error
	ReserveShares(ctx context.Context, id uint64, quantity int64) error
	CountActive(ctx context.Context) (int64, error)
}

type channelRepoImpl struct {
	db *gorm.DB
}

func NewChannelRepo(db *gorm.DB) ChannelRepo {
	return &channelRepoImpl{db: db}
}

func (s *channelRepoImpl) ListActive(ctx context.Context) ([]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("subscriber_count DESC").
		Find(&channels)
	if result.Error != nil {
		return nil, result.Error
	}
	return channels, nil
}

func (s *channelRepoImpl) GetActive(ctx context.Context, id uint64) (*model.Channel, error) {
	var channel model.Channel
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&channel).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (s *channelRepoImpl) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*model.Channel, error) {
	channels := make([]*model.Channel, 0, len(ids))
	result := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&channels)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[uint64]*model.Channel, len(channels))
	for _, c := range channels {
		out[c.ID] = c
	}
	return out, nil
}

func (s *channelRepoImpl) Create(ctx context.Context, channel *model.Channel) error {
	return s.db.WithContext(ctx).Create(channel).Error
}

func (s *channelRepoImpl) CreateBatch(ctx context.Context, channels []*model.Channel) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range channels {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *channelRepoImpl) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error {
	return s.db.WithContext(ctx).Model(&model.Channel{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL).Error
}

// ReserveShares checks and decrements the inventory in a single
// conditional UPDATE, the only statement allowed to touch
// available_shares on the purchase path.
func (s *channelRepoImpl) ReserveShares(ctx context.Context, id uint64, quantity int64) error {
	return reserveShares(s.db.WithContext(ctx), id, quantity)
}

func (s *channelRepoImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Channel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// reserveShares runs against whatever handle the caller holds, so the
// purchase transaction can reuse it on its own tx.
func reserveShares(tx *gorm.DB, channelID uint64, quantity int64) error {
	result := tx.Model(&model.Channel{}).
		Where("id = ? AND is_active = ? AND available_shares >= ?", channelID, true, quantity).
		UpdateColumns(map[string]interface{}{
			"available_shares": gorm.Expr("available_shares - ?", quantity),
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientShares
	}
	return nil
}
