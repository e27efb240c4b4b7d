package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
)

type Producer struct {
	log    logger.Logger
	client sarama.SyncProducer
	topic  string
}

// NewProducer синхронный продюсер отметок позиции в топик cfg.Topic.
func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	brokers := ParseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers in %q", cfg.Brokers)
	}

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true
	// один рейс всегда в одной партиции, порядок отметок сохраняется
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, producerLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewProducerWithClient(producerLog, cfg.Topic, client), nil
}

func NewProducerWithClient(log logger.Logger, topic string, client sarama.SyncProducer) *Producer {
	return &Producer{
		log:    log,
		client: client,
		topic:  topic,
	}
}

// PublishPosition отправляет отметку, ключ сообщения id рейса.
func (p *Producer) PublishPosition(ctx context.Context, event PositionReported) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal position: %w", err)
	}

	partition, offset, err := p.client.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.TripID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send position for trip %d: %w", event.TripID, err)
	}

	p.log.Info("position published",
		logger.NewField("trip", event.TripID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.client.Close()
}
