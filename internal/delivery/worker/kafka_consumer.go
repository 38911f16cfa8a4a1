package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"geekstore/config"
	"geekstore/internal/delivery"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/delivery/worker/handler"
	"geekstore/internal/domain/constants"
	"geekstore/internal/infra/pubsub"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultKafkaGroupID = "geekstore-mailworker"
	maxDeliveryAttempts = 5
	initialRetryBackoff = time.Second
)

// messageReader is the subset of *kafka.Reader used by the consumer.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader  messageReader
	mailUC  usecase.MailUsecase
	logger  *slog.Logger
	backoff time.Duration

	running  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	MailUC usecase.MailUsecase
}

// NewKafkaConsumer creates a Delivery that reads mail events from Kafka.
// It serves nothing unless the kafka provider is configured.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return disabledDelivery{logger: params.Logger}, nil
	}

	brokers := cfg.Kafka.BrokerList()
	if len(brokers) == 0 || cfg.Kafka.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required for the kafka provider")
	}

	groupID := cfg.Kafka.GroupID
	if groupID == "" {
		groupID = defaultKafkaGroupID
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    cfg.Kafka.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	c := newKafkaConsumer(reader, params.MailUC, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	params.Logger.Info("Kafka consumer initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", cfg.Kafka.Topic),
		slog.String("group_id", groupID),
	)

	return c, nil
}

func newKafkaConsumer(reader messageReader, mailUC usecase.MailUsecase, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:  reader,
		mailUC:  mailUC,
		logger:  logger,
		backoff: initialRetryBackoff,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Serve fetches messages until the context is cancelled or stop is called.
// Offsets are committed only after a message is handled or given up on.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	k.running.Store(true)
	defer close(k.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-k.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	k.logger.Info("Starting Kafka mail consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "kafka: fetch failed")
		}

		k.handleMessage(ctx, msg)

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "kafka: commit failed")
		}
	}
}

func (k *kafkaConsumer) handleMessage(ctx context.Context, msg kafka.Message) {
	logger := k.logger.With(
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
	)

	event, err := pubsub.UnmarshalMailEvent(msg.Value)
	if err != nil {
		logger.Error("[Kafka] Dropping undecodable mail event", slog.Any("error", err))

		return
	}

	requestID := handler.ExtractRequestID(ctx, headerValue(msg.Headers, pubsub.AttrRequestID), event)
	ctx, logger = deliverycontext.Scope(ctx, logger, requestID)

	backoff := k.backoff
	for attempt := 1; ; attempt++ {
		err := k.mailUC.HandleMailEvent(ctx, event)
		if err == nil {
			return
		}

		if !handler.IsRetryable(err) || attempt >= maxDeliveryAttempts {
			logger.Error("[Kafka] Giving up on mail event",
				slog.String("type", string(event.Type)),
				slog.Int("attempts", attempt),
				slog.Any("error", err),
			)

			return
		}

		logger.Warn("[Kafka] Retrying mail event",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (k *kafkaConsumer) stop(ctx context.Context) error {
	k.logger.Info("Shutting down Kafka mail consumer")

	k.stopOnce.Do(func() { close(k.stopCh) })
	if k.running.Load() {
		select {
		case <-k.done:
		case <-ctx.Done():
		}
	}

	return errors.WithStack(k.reader.Close())
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}

// disabledDelivery stands in for a transport that is not configured.
type disabledDelivery struct {
	logger *slog.Logger
}

func (d disabledDelivery) Serve(context.Context) error {
	d.logger.Info("Kafka consumer disabled for the configured pubsub provider")

	return nil
}
