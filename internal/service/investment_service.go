package service

import (
	"TeleInvest/internal/api/dto"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/kafka"
	"TeleInvest/internal/pkg/mongo"
	"TeleInvest/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type InvestmentService interface {
	// Purchase books a share purchase for the user. The whole ledger write is
	// atomic: on any failure no inventory, holding or profile change survives.
	Purchase(ctx context.Context, userID string, req *dto.CreateInvestmentReq) (*dto.InvestmentItem, error)
	ListByUser(ctx context.Context, userID string) ([]*dto.InvestmentItem, error)
	// History reads the user's purchase journal, newest first.
	History(ctx context.Context, userID string) ([]*mongo.PurchaseRecord, error)
}

const historyLimit = 50

type investmentService struct {
	channelRepo repository.ChannelRepo
	investRepo  repository.InvestmentRepo
	journalRepo mongo.PurchaseRecordRepo
	deduper     RequestDeduper
	publisher   PurchasePublisher
	notifier    InventoryNotifier
	cache       ChannelCache
}

func NewInvestmentService(
	channelRepo repository.ChannelRepo,
	investRepo repository.InvestmentRepo,
	journalRepo mongo.PurchaseRecordRepo,
	deduper RequestDeduper,
	publisher PurchasePublisher,
	notifier InventoryNotifier,
	cache ChannelCache,
) InvestmentService {
	return &investmentService{
		channelRepo: channelRepo,
		investRepo:  investRepo,
		journalRepo: journalRepo,
		deduper:     deduper,
		publisher:   publisher,
		notifier:    notifier,
		cache:       cache,
	}
}

func (s *investmentService) Purchase(ctx context.Context, userID string, req *dto.CreateInvestmentReq) (*dto.InvestmentItem, error) {
	if req.SharesToBuy < 1 {
		return nil, ErrInvalidQuantity
	}

	channel, err := s.channelRepo.GetActive(ctx, req.ChannelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	expected := float64(req.SharesToBuy) * channel.PricePerShare
	if math.Abs(req.Amount-expected) > consts.AmountTolerance {
		log.WarnContext(ctx, "purchase amount mismatch",
			"user_id", userID, "channel_id", req.ChannelID,
			"amount", req.Amount, "expected", expected)
		return nil, ErrAmountMismatch
	}

	claimed, err := s.deduper.Claim(ctx, userID, req.RequestID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrDuplicateRequest
	}

	holding, err := s.investRepo.ApplyPurchase(ctx, repository.PurchaseParams{
		UserID:    userID,
		ChannelID: req.ChannelID,
		Quantity:  req.SharesToBuy,
		Amount:    expected,
		RequestID: req.RequestID,
	})
	if err != nil {
		// A duplicate already reached the ledger; keep the claim so the
		// retry stays rejected.
		if errors.Is(err, repository.ErrDuplicateRequest) {
			return nil, ErrDuplicateRequest
		}
		s.deduper.Release(ctx, userID, req.RequestID)
		switch {
		case errors.Is(err, repository.ErrInsufficientShares):
			return nil, ErrInsufficientShares
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrChannelNotFound
		default:
			return nil, err
		}
	}

	s.afterPurchase(ctx, userID, channel.AvailableShares-req.SharesToBuy, req, expected, channel.PricePerShare)

	item := &dto.InvestmentItem{}
	if err := copier.Copy(item, holding); err != nil {
		return nil, err
	}
	return item, nil
}

// afterPurchase runs the non-transactional fan-out: audit event, live
// inventory push and cache invalidation. Failures are logged, never
// surfaced, the ledger is already committed.
func (s *investmentService) afterPurchase(ctx context.Context, userID string, remaining int64, req *dto.CreateInvestmentReq, amount, price float64) {
	if s.publisher != nil {
		event := &kafka.PurchaseEvent{
			EventID:       uuid.NewString(),
			RequestID:     req.RequestID,
			UserID:        userID,
			ChannelID:     req.ChannelID,
			Shares:        req.SharesToBuy,
			Amount:        amount,
			PricePerShare: price,
			PurchasedAt:   time.Now(),
		}
		s.publisher.PublishPurchase(event)
	}

	if s.notifier != nil {
		s.notifier.NotifyInventory(ctx, &InventoryUpdate{
			ChannelID:       req.ChannelID,
			AvailableShares: remaining,
		})
	}

	s.cache.Invalidate(ctx, req.ChannelID)
}

func (s *investmentService) History(ctx context.Context, userID string) ([]*mongo.PurchaseRecord, error) {
	records, err := s.journalRepo.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		log.ErrorContext(ctx, "purchase journal read failed", "user_id", userID, "err", err)
		return nil, ErrStoreUnavailable
	}
	return records, nil
}

func (s *investmentService) ListByUser(ctx context.Context, userID string) ([]*dto.InvestmentItem, error) {
	holdings, err := s.investRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvestmentItem, 0, len(holdings))
	for _, holding := range holdings {
		item := &dto.InvestmentItem{}
		if err := copier.Copy(item, holding); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
