package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"examadda/internal/domain/service"

	"github.com/pkg/errors"
)

// localSubscription names the subscription the local publisher claims to deliver for.
const localSubscription = "projects/local/subscriptions/account-events"

// PushEnvelope is the JSON body Pub/Sub POSTs to push subscriptions.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushEnvelope. Data is base64 encoded.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// encodeEvent returns the message payload and attributes for an account event.
// Attributes carry what subscribers filter on without decoding the payload.
func encodeEvent(event *service.AccountEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode account event")
	}

	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
		"role":     event.Role,
	}
	if event.InstituteID != "" {
		attributes["institute_id"] = event.InstituteID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

// newPushEnvelope wraps an event the way Pub/Sub would deliver it to a push endpoint.
func newPushEnvelope(event *service.AccountEvent, publishedAt time.Time) (*PushEnvelope, error) {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	return &PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attributes,
			MessageID:   event.EventID,
			PublishTime: publishedAt.UTC().Format(time.RFC3339),
		},
		Subscription: localSubscription,
	}, nil
}

// AccountEvent decodes the envelope payload.
func (e *PushEnvelope) AccountEvent() (*service.AccountEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.AccountEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an account event")
	}

	return &event, nil
}
