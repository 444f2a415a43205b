package kafka

import (
	"TeleInvest/internal/pkg/mongo"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// PurchaseHandler materializes purchase events into the Mongo journal.
type PurchaseHandler struct {
	journalRepo mongo.PurchaseRecordRepo
}

func NewPurchaseHandler(journalRepo mongo.PurchaseRecordRepo) *PurchaseHandler {
	return &PurchaseHandler{journalRepo: journalRepo}
}

func (s *PurchaseHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("purchase journal consumer setup")
	return nil
}

func (s *PurchaseHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("purchase journal consumer cleanup")
	return nil
}

func (s *PurchaseHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		s.handleMessage(session, msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

func (s *PurchaseHandler) handleMessage(session sarama.ConsumerGroupSession, msg *sarama.ConsumerMessage) {
	var evt PurchaseEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		log.Error("unmarshal purchase event error", "err", err)
		return
	}

	record := &mongo.PurchaseRecord{
		EventID:       evt.EventID,
		RequestID:     evt.RequestID,
		UserID:        evt.UserID,
		ChannelID:     evt.ChannelID,
		Shares:        evt.Shares,
		Amount:        evt.Amount,
		PricePerShare: evt.PricePerShare,
		PurchasedAt:   evt.PurchasedAt,
	}

	if err := s.journalRepo.SaveRecord(session.Context(), record); err != nil {
		log.Error("save purchase journal record error", "err", err, "event_id", evt.EventID)
	}
}
