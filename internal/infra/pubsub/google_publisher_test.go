package pubsub

import (
	"context"
	"testing"

	"geekstore/internal/domain/entity"

	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const testProject = "geekstore-test"

func fakePubSubOptions(t *testing.T) (*pstest.Server, []option.ClientOption) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	return srv, []option.ClientOption{
		option.WithEndpoint(srv.Addr),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}
}

func createTestTopic(t *testing.T, srv *pstest.Server, topicID string) {
	t.Helper()

	_, err := srv.GServer.CreateTopic(context.Background(), &pubsubpb.Topic{
		Name: "projects/" + testProject + "/topics/" + topicID,
	})
	require.NoError(t, err)
}

func TestGooglePubSubPublisher_PublishMailEvent(t *testing.T) {
	srv, opts := fakePubSubOptions(t)
	createTestTopic(t, srv, "mail")

	publisher, err := NewGooglePubSubPublisher(context.Background(), testProject, "mail", newDiscardLogger(), opts...)
	require.NoError(t, err)

	require.NoError(t, publisher.PublishMailEvent(context.Background(), newTestEvent()))
	require.NoError(t, publisher.Close())

	messages := srv.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "req-1", messages[0].Attributes[AttrRequestID])
	assert.Equal(t, string(entity.MailEventRecoveryCode), messages[0].Attributes[AttrEventType])

	event, err := UnmarshalMailEvent(messages[0].Data)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", event.To)
	assert.Equal(t, "123456", event.Code)
}

func TestGooglePubSubPublisher_MissingTopic(t *testing.T) {
	_, opts := fakePubSubOptions(t)

	_, err := NewGooglePubSubPublisher(context.Background(), testProject, "absent", newDiscardLogger(), opts...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects/geekstore-test/topics/absent")
}

func TestGooglePubSubPublisher_RejectsNilEvent(t *testing.T) {
	srv, opts := fakePubSubOptions(t)
	createTestTopic(t, srv, "mail")

	publisher, err := NewGooglePubSubPublisher(context.Background(), testProject, "mail", newDiscardLogger(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	assert.Error(t, publisher.PublishMailEvent(context.Background(), nil))
	assert.Empty(t, srv.Messages())
}
