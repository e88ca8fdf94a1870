package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"examadda/config"
	"examadda/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.AccountEvent {
	return &service.AccountEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventTypeAccountRegistered,
		UserID:      "c0ffee00-0000-0000-0000-000000000001",
		Email:       "owner@example.com",
		Role:        "INSTITUTE",
		InstituteID: "c0ffee00-0000-0000-0000-000000000002",
		OccurredAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishAccountEvent(t *testing.T) {
	t.Run("sends a push envelope", func(t *testing.T) {
		var received PushEnvelope
		var requestID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID = r.Header.Get("X-Request-Id")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.DiscardHandler))

		require.NoError(t, publisher.PublishAccountEvent(context.Background(), testEvent()))

		assert.Equal(t, "req-1", requestID)
		assert.Equal(t, "evt-1", received.Message.MessageID)
		assert.Equal(t, map[string]string{
			"event_id":     "evt-1",
			"type":         service.EventTypeAccountRegistered,
			"role":         "INSTITUTE",
			"institute_id": "c0ffee00-0000-0000-0000-000000000002",
			"request_id":   "req-1",
		}, received.Message.Attributes)

		decoded, err := received.AccountEvent()
		require.NoError(t, err)
		assert.Equal(t, testEvent(), decoded)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.DiscardHandler))

		err := publisher.PublishAccountEvent(context.Background(), testEvent())

		assert.ErrorContains(t, err, "503")
	})
}

func TestPushEnvelope_AccountEvent(t *testing.T) {
	t.Run("bad base64", func(t *testing.T) {
		_, err := (&PushEnvelope{Message: PushMessage{Data: "%%%"}}).AccountEvent()

		assert.ErrorContains(t, err, "base64")
	})

	t.Run("not an event", func(t *testing.T) {
		_, err := (&PushEnvelope{Message: PushMessage{Data: "bm90IGpzb24="}}).AccountEvent()

		assert.ErrorContains(t, err, "not an account event")
	})
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: slog.New(slog.DiscardHandler),
		}
	}

	t.Run("unconfigured provider is a no-op", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, nil))

		require.NoError(t, err)
		assert.IsType(t, noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishAccountEvent(context.Background(), testEvent()))
	})

	t.Run("local provider", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:3002/push"}))

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("local provider without endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: ProviderLocal}))

		assert.Error(t, err)
	})

	t.Run("google provider without topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}))

		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "kafka"}))

		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
