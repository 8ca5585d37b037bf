// Package service holds the engagement coordinator: the multi-step mutations
// that keep comments, post counters and notifications in step.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bloghub/internal/models"
	"bloghub/internal/observability"
)

// Realtime event types pushed to connected users.
const (
	EventNotificationCreated = "notification_created"
)

// EventPublisher delivers realtime events to a user's open connections.
type EventPublisher interface {
	PublishUserEvent(ctx context.Context, userID uint, eventType string, payload map[string]interface{})
}

// Options holds the paging and limits shared by the engagement services.
type Options struct {
	CommentsPageSize      int
	RepliesPageSize       int
	NotificationsPageSize int
	MaxCommentLength      int
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		CommentsPageSize:      5,
		RepliesPageSize:       5,
		NotificationsPageSize: 10,
		MaxCommentLength:      10000,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CommentsPageSize <= 0 {
		o.CommentsPageSize = d.CommentsPageSize
	}
	if o.RepliesPageSize <= 0 {
		o.RepliesPageSize = d.RepliesPageSize
	}
	if o.NotificationsPageSize <= 0 {
		o.NotificationsPageSize = d.NotificationsPageSize
	}
	if o.MaxCommentLength <= 0 {
		o.MaxCommentLength = d.MaxCommentLength
	}
	return o
}

// stepErrors collects failures of the independent steps of one mutation.
// Every failure is counted and logged where it happens; the caller decides
// whether to carry on.
type stepErrors struct {
	op   string
	errs []error
}

func newStepErrors(op string) *stepErrors {
	return &stepErrors{op: op}
}

func (s *stepErrors) record(ctx context.Context, step string, err error) bool {
	if err == nil {
		return false
	}
	observability.RecordPartialFailure(s.op, step)
	observability.Logger.WarnContext(ctx, "engagement step failed",
		slog.String("operation", s.op),
		slog.String("step", step),
		slog.String("error", err.Error()),
	)
	s.errs = append(s.errs, fmt.Errorf("%s: %w", step, err))
	return true
}

func (s *stepErrors) err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return models.NewPartialFailureError(s.op, errors.Join(s.errs...))
}

// finish records the outcome of op and marks the span on failure.
func finish(op string, span *observability.Span, err error) {
	if err == nil {
		observability.RecordOperation(op, observability.OutcomeSuccess)
		return
	}
	span.SetError(err)
	switch models.ErrorCode(err) {
	case models.CodeValidation, models.CodeForbidden, models.CodeNotFound, models.CodeUnauthorized:
		observability.RecordOperation(op, observability.OutcomeRejected)
	case models.CodePartialFailure:
		observability.RecordOperation(op, observability.OutcomePartialFailure)
	default:
		observability.RecordOperation(op, observability.OutcomeError)
	}
}

func publish(ctx context.Context, events EventPublisher, userID uint, eventType string, payload map[string]interface{}) {
	if events == nil {
		return
	}
	events.PublishUserEvent(ctx, userID, eventType, payload)
}

func clampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}
