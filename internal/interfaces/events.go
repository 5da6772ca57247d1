package interfaces

import (
	"context"

	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

//go:generate mockgen -destination=mocks/mock_events.go -package=mocks -source=events.go EventPublisher,InFlightGuard

// EventPublisher announces processed invocations to downstream consumers.
type EventPublisher interface {
	PublishAction(ctx context.Context, rec models.ActionRecord) error
}

// InFlightGuard suppresses concurrent handling of the same key. It is an
// optimisation only; a duplicate that gets through is absorbed downstream.
type InFlightGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
