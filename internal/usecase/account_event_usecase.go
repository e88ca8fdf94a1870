package usecase

import (
	"context"
	"fmt"

	"examadda/internal/domain/service"

	"github.com/pkg/errors"
)

// AccountEventUsecase consumes account events delivered by the message queue.
type AccountEventUsecase interface {
	// HandleAccountEvent processes one event. A RetryableError asks the queue to redeliver;
	// any other error drops the event.
	HandleAccountEvent(ctx context.Context, event *service.AccountEvent) error
}

// RetryableError marks a failure that may succeed on redelivery.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err asks for redelivery.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
