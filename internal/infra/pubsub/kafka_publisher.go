package pubsub

import (
	"context"
	"log/slog"
	"time"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const kafkaWriteTimeout = 10 * time.Second

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on top of a kafka-go Writer
type kafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher that writes mail events to topic
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           kafkaWriteTimeout,
		AllowAutoTopicCreation: true,
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return newKafkaPublisher(writer, topic, logger), nil
}

func newKafkaPublisher(writer messageWriter, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

// PublishMailEvent writes the event keyed by recipient so mails to one address stay ordered
func (p *kafkaPublisher) PublishMailEvent(ctx context.Context, event *entity.MailEvent) error {
	data, err := MarshalMailEvent(event)
	if err != nil {
		return err
	}

	headers := make([]kafka.Header, 0, 2)
	for key, value := range eventAttributes(event) {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	msg := kafka.Message{
		Key:     []byte(event.To),
		Value:   data,
		Headers: headers,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "kafka: write failed")
	}

	p.logger.Info("[Kafka] Mail event published",
		slog.String("topic", p.topic),
		slog.String("type", string(event.Type)),
	)

	return nil
}

// Close flushes pending writes and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
