package repository

import (
	"TeleInvest/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateRequest is returned when a purchase carries a request id
// that was already applied to the holding.
var ErrDuplicateRequest = errors.New("duplicate purchase request")

// PurchaseParams is one validated purchase order. Amount has already
// been checked against the channel price by the service layer.
type PurchaseParams struct {
	UserID    string
	ChannelID uint64
	Quantity  int64
	Amount    float64
	RequestID string
}

type InvestmentRepo interface {
	ApplyPurchase(ctx context.Context, p PurchaseParams) (*model.Investment, error)
	GetByUserAndChannel(ctx context.Context, userID string, channelID uint64) (*model.Investment, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Investment, error)
	ListByUserAndChannels(ctx context.Context, userID string, channelIDs []uint64) (map[uint64]*model.Investment, error)
	ListByChannel(ctx context.Context, channelID uint64) ([]*model.Investment, error)
	SumByUser(ctx context.Context) ([]*LedgerSum, error)
}

// LedgerSum is the per-user aggregate recomputed from ledger truth.
type LedgerSum struct {
	UserID        string
	TotalInvested float64
	CurrentValue  float64
	TotalEarnings float64
}

type investmentRepoImpl struct {
	db *gorm.DB
}

func NewInvestmentRepo(db *gorm.DB) InvestmentRepo {
	return &investmentRepoImpl{db: db}
}

// ApplyPurchase runs the whole purchase unit in one transaction:
// inventory reservation, holding upsert and profile accumulation either
// all commit or all roll back. The holding row is locked so concurrent
// purchases by the same user against the same channel serialize.
func (s *investmentRepoImpl) ApplyPurchase(ctx context.Context, p PurchaseParams) (*model.Investment, error) {
	var holding model.Investment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var channel model.Channel
		if err := tx.Where("id = ? AND is_active = ?", p.ChannelID, true).
			First(&channel).Error; err != nil {
			return err
		}

		if err := reserveShares(tx, p.ChannelID, p.Quantity); err != nil {
			return err
		}

		err := lockForUpdate(tx).
			Where("user_id = ? AND channel_id = ?", p.UserID, p.ChannelID).
			First(&holding).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			holding = model.Investment{
				UserID:        p.UserID,
				ChannelID:     p.ChannelID,
				SharesOwned:   p.Quantity,
				TotalInvested: p.Amount,
				CurrentValue:  p.Amount,
				PurchaseDate:  time.Now(),
				LastRequestID: p.RequestID,
			}
			if err := tx.Create(&holding).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if p.RequestID != "" && holding.LastRequestID == p.RequestID {
				return ErrDuplicateRequest
			}
			holding.SharesOwned += p.Quantity
			holding.TotalInvested += p.Amount
			holding.CurrentValue = float64(holding.SharesOwned) * channel.PricePerShare
			holding.LastRequestID = p.RequestID
			if err := tx.Save(&holding).Error; err != nil {
				return err
			}
		}

		if err := ensureProfile(tx, p.UserID); err != nil {
			return err
		}
		return tx.Model(&model.UserProfile{}).
			Where("user_id = ?", p.UserID).
			UpdateColumns(map[string]interface{}{
				"total_invested":  gorm.Expr("total_invested + ?", p.Amount),
				"portfolio_value": gorm.Expr("portfolio_value + ?", p.Amount),
				"updated_at":      time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

func (s *investmentRepoImpl) GetByUserAndChannel(ctx context.Context, userID string, channelID uint64) (*model.Investment, error) {
	var holding model.Investment
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		First(&holding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &holding, nil
}

func (s *investmentRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Investment, error) {
	holdings := make([]*model.Investment, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&holdings)
	if result.Error != nil {
		return nil, result.Error
	}
	return holdings, nil
}

func (s *investmentRepoImpl) ListByUserAndChannels(ctx context.Context, userID string, channelIDs []uint64) (map[uint64]*model.Investment, error) {
	holdings := make([]*model.Investment, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND channel_id IN ?", userID, channelIDs).
		Find(&holdings)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[uint64]*model.Investment, len(holdings))
	for _, h := range holdings {
		out[h.ChannelID] = h
	}
	return out, nil
}

func (s *investmentRepoImpl) ListByChannel(ctx context.Context, channelID uint64) ([]*model.Investment, error) {
	holdings := make([]*model.Investment, 0)
	result := s.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Find(&holdings)
	if result.Error != nil {
		return nil, result.Error
	}
	return holdings, nil
}

func (s *investmentRepoImpl) SumByUser(ctx context.Context) ([]*LedgerSum, error) {
	sums := make([]*LedgerSum, 0)
	err := s.db.WithContext(ctx).Model(&model.Investment{}).
		Select("user_id, SUM(total_invested) AS total_invested, SUM(current_value) AS current_value, SUM(total_earnings) AS total_earnings").
		Group("user_id").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return sums, nil
}

// lockForUpdate requests a row lock on dialects that support it. The
// sqlite test database serializes writers anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
