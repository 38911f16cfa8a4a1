package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"geekstore/internal/domain/entity"

	"github.com/pkg/errors"
)

// Message attribute keys shared by every transport.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeMailEvent unwraps the base64 payload of a push message.
func (m *PubSubPushMessage) DecodeMailEvent() (*entity.MailEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode push message data")
	}

	return UnmarshalMailEvent(data)
}

// MarshalMailEvent serializes an event for the wire.
func MarshalMailEvent(event *entity.MailEvent) ([]byte, error) {
	if event == nil {
		return nil, errors.New("mail event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// UnmarshalMailEvent parses and sanity checks an event read from the wire.
func UnmarshalMailEvent(data []byte) (*entity.MailEvent, error) {
	var event entity.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal mail event")
	}

	if event.Type == "" || event.To == "" {
		return nil, errors.New("mail event is missing type or recipient")
	}

	return &event, nil
}

func eventAttributes(event *entity.MailEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType: string(event.Type),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
