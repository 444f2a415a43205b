package kafka

import (
	"TeleInvest/internal/api/config"
	"TeleInvest/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager owns all Kafka consumer groups.
type ConsumerManager struct {
	purchaseConsumer sarama.ConsumerGroup
	purchaseHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, journalRepo mongo.PurchaseRecordRepo) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	purchaseConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaPurchaseConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		purchaseConsumer: purchaseConsumer,
		purchaseHandler:  NewPurchaseHandler(journalRepo),
	}, nil
}

// Start runs the consumer loops until the context is cancelled.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaPurchaseConsumer.Topic
		log.Info("Purchase journal consumer started", "topic", topic)
		for {
			if err := m.purchaseConsumer.Consume(ctx, []string{topic}, m.purchaseHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.purchaseConsumer.Close(); err != nil {
		log.Error("Failed to close purchase consumer", "err", err)
	}

	return nil
}
