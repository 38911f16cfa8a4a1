package pubsub

import (
	"context"
	"log/slog"

	"geekstore/config"
	"geekstore/internal/domain/constants"
	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Handler service.MailEventHandler `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}
	logger := params.Logger

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case "", constants.PubSubProviderInProcess:
		workers, queueSize := 0, 0
		if params.Config.Mail != nil {
			workers, queueSize = params.Config.Mail.Workers, params.Config.Mail.QueueSize
		}

		publisher, err = NewInProcessPublisher(params.Handler, workers, queueSize, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderKafka:
		publisher, err = NewKafkaPublisher(cfg.Kafka.BrokerList(), cfg.Kafka.Topic, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
