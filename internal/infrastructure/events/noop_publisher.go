package events

import (
	"context"

	"github.com/neuproject/sports-calendar/internal/usecase"
)

// NoopPublisher stands in when the event broker is not configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (*NoopPublisher) PublishMatchesUpdated(context.Context, usecase.SyncSummary) error {
	return nil
}
