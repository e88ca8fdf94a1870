// Package pubsub publishes account events to Cloud Pub/Sub or, in development,
// straight to a push endpoint.
package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"examadda/config"
	"examadda/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// ProviderLocal pushes events to an HTTP endpoint in the Pub/Sub push format.
	ProviderLocal = "local"
	// ProviderGoogle publishes events to a Google Cloud Pub/Sub topic.
	ProviderGoogle = "google"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct{}

func (noopPublisher) PublishAccountEvent(context.Context, *service.AccountEvent) error { return nil }

func (noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes it on shutdown.
// An empty provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || strings.TrimSpace(cfg.Provider) == "" {
		params.Logger.Info("Account event publishing disabled")

		return noopPublisher{}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case ProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger)
	case ProviderGoogle:
		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
		if err != nil {
			return nil, err
		}
	}

	params.Logger.Info("Account event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
		slog.String("endpoint", cfg.LocalEndpoint),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}
