package kafka

import (
	"TeleInvest/internal/api/config"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Producer publishes purchase events onto the purchase topic. Publishing
// happens after the ledger transaction commits, so a lost event can only
// mean a missing audit row, never a missing ledger row.
type Producer struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewProducer(cfg *config.Config) (*Producer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	producer, err := sarama.NewAsyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	p := &Producer{
		producer: producer,
		topic:    cfg.KafkaPurchaseConsumer.Topic,
	}

	go func() {
		for {
			select {
			case _, ok := <-producer.Successes():
				if !ok {
					return
				}
			case err, ok := <-producer.Errors():
				if !ok {
					return
				}
				log.Error("purchase event publish failed", "err", err)
			}
		}
	}()

	return p, nil
}

// PublishPurchase enqueues one purchase event, keyed by user so a
// user's events stay ordered within a partition.
func (p *Producer) PublishPurchase(evt *PurchaseEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		log.Error("marshal purchase event failed", "err", err)
		return
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.UserID),
		Value: sarama.ByteEncoder(payload),
	}
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
