package repository

import (
	"TeleInvest/internal/model"
	"TeleInvest/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error)
	Ensure(ctx context.Context, userID string) error
	Overwrite(ctx context.Context, userID string, totalInvested, portfolioValue, totalEarnings float64) (bool, error)
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &profileRepoImpl{db: db}
}

func (s *profileRepoImpl) GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Ensure lazily creates a zeroed profile row. Idempotent.
func (s *profileRepoImpl) Ensure(ctx context.Context, userID string) error {
	return ensureProfile(s.db.WithContext(ctx), userID)
}

// Overwrite replaces the rollup columns with values recomputed from
// ledger truth. Returns whether anything actually changed.
func (s *profileRepoImpl) Overwrite(ctx context.Context, userID string, totalInvested, portfolioValue, totalEarnings float64) (bool, error) {
	result := s.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Where("total_invested <> ? OR portfolio_value <> ? OR total_earnings <> ?",
			totalInvested, portfolioValue, totalEarnings).
		UpdateColumns(map[string]interface{}{
			"total_invested":  totalInvested,
			"portfolio_value": portfolioValue,
			"total_earnings":  totalEarnings,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func ensureProfile(tx *gorm.DB, userID string) error {
	profile := model.UserProfile{
		UserID:        userID,
		InvestorLevel: consts.DefaultInvestorLevel,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&profile).Error
}
