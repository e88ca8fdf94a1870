package impl

import (
	"context"
	"log/slog"

	deliverycontext "examadda/internal/delivery/context"
	"examadda/internal/domain/entity"
	"examadda/internal/domain/repository"
	"examadda/internal/domain/service"
	"examadda/internal/infra/metrics"
	"examadda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	errUnknownEventType = errors.New("unknown account event type")
	errMalformedEvent   = errors.New("malformed account event")
	errStaleEvent       = errors.New("account event refers to a record that no longer exists")
	errEventMismatch    = errors.New("account event disagrees with the stored account")
)

type accountEventService struct {
	userRepo      repository.UserRepository
	instituteRepo repository.InstituteRepository
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// AccountEventServiceParams holds dependencies for AccountEventService, injected by Fx.
type AccountEventServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	InstituteRepo repository.InstituteRepository
	Metrics       *metrics.Metrics `optional:"true"`
	Logger        *slog.Logger
}

// NewAccountEventService is the constructor for accountEventService.
func NewAccountEventService(params AccountEventServiceParams) usecase.AccountEventUsecase {
	return &accountEventService{
		userRepo:      params.UserRepo,
		instituteRepo: params.InstituteRepo,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

// HandleAccountEvent checks the event against the stored account and writes the audit record.
func (srv *accountEventService) HandleAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	var err error
	switch event.Type {
	case service.EventTypeAccountRegistered:
		err = srv.handleRegistered(ctx, event)
	default:
		err = errors.Wrapf(errUnknownEventType, "type %q", event.Type)
	}

	srv.metrics.ObserveEvent(event.Type, eventOutcome(err))

	return err
}

func (srv *accountEventService) handleRegistered(ctx context.Context, event *service.AccountEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(errMalformedEvent, "user_id %q", event.UserID)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(errStaleEvent, "user %s", userID)
		}

		return usecase.NewRetryableError(errors.Wrap(err, "failed to load user"))
	}

	if user.Role.String() != event.Role || user.Email != entity.NormalizeEmail(event.Email) {
		return errors.Wrapf(errEventMismatch, "user %s", userID)
	}

	attrs := []any{
		slog.String("event_id", event.EventID),
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
		slog.Time("occurred_at", event.OccurredAt),
	}

	if event.InstituteID != "" {
		institute, err := srv.lookupInstitute(ctx, event.InstituteID)
		if err != nil {
			return err
		}
		attrs = append(attrs,
			slog.String("institute_id", institute.ID.String()),
			slog.String("institute_slug", institute.CanonicalSlug()),
		)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Account registered", attrs...)

	return nil
}

func (srv *accountEventService) lookupInstitute(ctx context.Context, rawID string) (*entity.Institute, error) {
	instituteID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.Wrapf(errMalformedEvent, "institute_id %q", rawID)
	}

	institute, err := srv.instituteRepo.FindByID(ctx, instituteID)
	if err != nil {
		if errors.Is(err, repository.ErrInstituteNotFound) {
			return nil, errors.Wrapf(errStaleEvent, "institute %s", instituteID)
		}

		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to load institute"))
	}

	return institute, nil
}

func eventOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case usecase.IsRetryable(err):
		return metrics.OutcomeError
	default:
		return metrics.OutcomeRejected
	}
}
