package service

import (
	"context"
	"log/slog"

	"bloghub/internal/cache"
	"bloghub/internal/models"
	"bloghub/internal/observability"
	"bloghub/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

const opListNotifications = "list_notifications"

// FilterAll selects every notification type.
const FilterAll = "all"

type NotificationService struct {
	notificationRepo repository.NotificationRepository
	opts             Options
}

type ListNotificationsInput struct {
	RecipientID uint
	Filter      string
	Page        int
	// DeletedDocCount is how many items the client removed from pages it already holds.
	DeletedDocCount int
}

func NewNotificationService(notificationRepo repository.NotificationRepository, opts Options) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		opts:             opts.withDefaults(),
	}
}

// ParseFilter maps a feed filter to a notification type. "all" and "" map to
// the empty type, which matches everything.
func ParseFilter(filter string) (models.NotificationType, error) {
	if filter == "" || filter == FilterAll {
		return "", nil
	}
	typ := models.NotificationType(filter)
	if !typ.Valid() {
		return "", models.NewValidationError("filter must be one of all, like, comment, reply")
	}
	return typ, nil
}

// List returns one page of the recipient's feed and marks the whole feed seen.
// Returned items keep the seen state they had before the call.
func (s *NotificationService) List(ctx context.Context, in ListNotificationsInput) (items []*models.Notification, err error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.List",
		attribute.Int64("recipient.id", int64(in.RecipientID)),
		attribute.String("notification.filter", in.Filter),
		attribute.Int("page", in.Page),
	)
	defer span.End()
	defer func() { finish(opListNotifications, span, err) }()

	typ, err := ParseFilter(in.Filter)
	if err != nil {
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	size := s.opts.NotificationsPageSize
	skip := clampSkip((page-1)*size - in.DeletedDocCount)

	items, err = s.notificationRepo.List(ctx, repository.NotificationQuery{
		RecipientID: in.RecipientID,
		Type:        typ,
		Limit:       size,
		Offset:      skip,
	})
	if err != nil {
		return nil, err
	}

	if err := s.notificationRepo.MarkSeen(ctx, in.RecipientID); err != nil {
		observability.RecordPartialFailure(opListNotifications, "mark_seen")
		observability.Logger.WarnContext(ctx, "failed to mark notifications seen",
			slog.Uint64("recipient_id", uint64(in.RecipientID)),
			slog.String("error", err.Error()),
		)
	}
	cache.InvalidateUnseen(ctx, in.RecipientID)

	return items, nil
}

// Count returns how many notifications match the filter, using the same query as List.
func (s *NotificationService) Count(ctx context.Context, recipientID uint, filter string) (int64, error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.Count",
		attribute.Int64("recipient.id", int64(recipientID)),
		attribute.String("notification.filter", filter),
	)
	defer span.End()

	typ, err := ParseFilter(filter)
	if err != nil {
		return 0, err
	}
	count, err := s.notificationRepo.Count(ctx, recipientID, typ)
	if err != nil {
		span.SetError(err)
		return 0, err
	}
	return count, nil
}

// HasNew reports whether the recipient has unseen notifications from someone else.
func (s *NotificationService) HasNew(ctx context.Context, recipientID uint) (bool, error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.HasNew",
		attribute.Int64("recipient.id", int64(recipientID)),
	)
	defer span.End()

	var unseen bool
	fetch := func() error {
		var err error
		unseen, err = s.notificationRepo.HasUnseen(ctx, recipientID)
		return err
	}
	err := cache.AsideGuarded(ctx,
		cache.UnseenNotificationsKey(recipientID),
		cache.UnseenNotificationsVersionKey(recipientID),
		&unseen, cache.UnseenNotificationsTTL, fetch)
	if err != nil {
		span.SetError(err)
		return false, err
	}
	return unseen, nil
}
