package pubsub

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const (
	// Mail events are sent one at a time; a short delay keeps a confirmation mail
	// from waiting on a batch that never fills.
	mailPublishDelay = 10 * time.Millisecond
	// A checkout must not hang on an unreachable broker.
	mailPublishTimeout = 10 * time.Second
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger, opts ...option.ClientOption) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "mail topic %s is not available", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = mailPublishDelay
	publisher.PublishSettings.Timeout = mailPublishTimeout

	logger.Info("Google Pub/Sub publisher initialized", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishMailEvent waits for the server ack, so a failure reaches the caller's log.
func (p *googlePubSubPublisher) PublishMailEvent(ctx context.Context, event *entity.MailEvent) error {
	data, err := MarshalMailEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, p.topic)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[GooglePubSub] Mail event published",
		slog.String("type", string(event.Type)),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
