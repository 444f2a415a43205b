package repository

import (
	"TeleInvest/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DistributionRepo interface {
	RecordDistribution(ctx context.Context, channelID uint64, period string, amountPerShare float64) (bool, error)
}

type distributionRepoImpl struct {
	db *gorm.DB
}

func NewDistributionRepo(db *gorm.DB) DistributionRepo {
	return &distributionRepoImpl{db: db}
}

// RecordDistribution credits one channel's monthly payout to every
// holding and owner profile in a single transaction. The unique
// (channel_id, period) journal row makes a repeat call a no-op, so the
// job is safe to rerun. Returns whether the payout was applied.
func (s *distributionRepoImpl) RecordDistribution(ctx context.Context, channelID uint64, period string, amountPerShare float64) (bool, error) {
	applied := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := model.EarningsDistribution{
			ChannelID:      channelID,
			Period:         period,
			AmountPerShare: amountPerShare,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "channel_id"}, {Name: "period"}},
			DoNothing: true,
		}).Create(&entry)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Already paid out for this period.
			return nil
		}
		applied = true

		holdings := make([]*model.Investment, 0)
		if err := tx.Where("channel_id = ?", channelID).Find(&holdings).Error; err != nil {
			return err
		}

		for _, h := range holdings {
			payout := float64(h.SharesOwned) * amountPerShare

			if err := tx.Model(&model.Investment{}).
				Where("id = ?", h.ID).
				UpdateColumns(map[string]interface{}{
					"total_earnings": gorm.Expr("total_earnings + ?", payout),
					"updated_at":     time.Now(),
				}).Error; err != nil {
				return err
			}

			if err := ensureProfile(tx, h.UserID); err != nil {
				return err
			}
			if err := tx.Model(&model.UserProfile{}).
				Where("user_id = ?", h.UserID).
				UpdateColumns(map[string]interface{}{
					"total_earnings": gorm.Expr("total_earnings + ?", payout),
					"updated_at":     time.Now(),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}
