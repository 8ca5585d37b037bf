package repository

import (
	"context"

	"bloghub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationQuery selects a page of a recipient's feed.
// An empty Type matches every notification type.
type NotificationQuery struct {
	RecipientID uint
	Type        models.NotificationType
	Limit       int
	Offset      int
}

// NotificationRepository defines the interface for notification feed operations
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	CreateLikeIfAbsent(ctx context.Context, postID, recipientID, actorID uint) (bool, error)
	DeleteLike(ctx context.Context, postID, actorID uint) (bool, error)
	LikeExists(ctx context.Context, postID, actorID uint) (bool, error)
	DeleteByComment(ctx context.Context, commentID uint) ([]uint, error)
	ClearReply(ctx context.Context, replyID uint) error
	SetReply(ctx context.Context, notificationID, recipientID, replyID uint) (bool, error)
	List(ctx context.Context, q NotificationQuery) ([]*models.Notification, error)
	Count(ctx context.Context, recipientID uint, typ models.NotificationType) (int64, error)
	MarkSeen(ctx context.Context, recipientID uint) error
	HasUnseen(ctx context.Context, recipientID uint) (bool, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// CreateLikeIfAbsent inserts the like notification for (post, actor) and reports whether a row was inserted.
func (r *notificationRepository) CreateLikeIfAbsent(ctx context.Context, postID, recipientID, actorID uint) (bool, error) {
	n := &models.Notification{
		Type:        models.NotificationLike,
		PostID:      postID,
		RecipientID: recipientID,
		ActorID:     actorID,
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(n)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteLike removes the like notification for (post, actor) and reports whether a row was removed.
func (r *notificationRepository) DeleteLike(ctx context.Context, postID, actorID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("type = ? AND post_id = ? AND actor_id = ?", models.NotificationLike, postID, actorID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *notificationRepository) LikeExists(ctx context.Context, postID, actorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("type = ? AND post_id = ? AND actor_id = ?", models.NotificationLike, postID, actorID).
		Count(&count).Error
	return count > 0, err
}

// DeleteByComment removes the notifications raised by a comment and returns
// the distinct recipients that lost one.
func (r *notificationRepository) DeleteByComment(ctx context.Context, commentID uint) ([]uint, error) {
	var recipients []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("comment_id = ?", commentID).
		Distinct().
		Order("recipient_id").
		Pluck("recipient_id", &recipients).Error; err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&models.Notification{}).Error; err != nil {
		return nil, err
	}
	return recipients, nil
}

// ClearReply unsets reply_id on notifications pointing at a removed reply; the notifications stay.
func (r *notificationRepository) ClearReply(ctx context.Context, replyID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("reply_id = ?", replyID).
		UpdateColumn("reply_id", nil).Error
}

// SetReply records replyID on a notification addressed to recipientID.
func (r *notificationRepository) SetReply(ctx context.Context, notificationID, recipientID, replyID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		UpdateColumn("reply_id", replyID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *notificationRepository) feed(ctx context.Context, recipientID uint, typ models.NotificationType) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND actor_id <> ?", recipientID, recipientID)
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	return q
}

func (r *notificationRepository) List(ctx context.Context, q NotificationQuery) ([]*models.Notification, error) {
	var items []*models.Notification
	err := r.feed(ctx, q.RecipientID, q.Type).
		Preload("Post").
		Preload("Actor").
		Preload("Comment").
		Preload("RepliedOnComment").
		Preload("Reply").
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&items).Error
	return items, err
}

func (r *notificationRepository) Count(ctx context.Context, recipientID uint, typ models.NotificationType) (int64, error) {
	var count int64
	err := r.feed(ctx, recipientID, typ).Count(&count).Error
	return count, err
}

// MarkSeen flags every notification from another actor to recipientID as seen.
func (r *notificationRepository) MarkSeen(ctx context.Context, recipientID uint) error {
	return r.feed(ctx, recipientID, "").
		Where("seen = ?", false).
		UpdateColumn("seen", true).Error
}

func (r *notificationRepository) HasUnseen(ctx context.Context, recipientID uint) (bool, error) {
	var ids []uint
	err := r.feed(ctx, recipientID, "").
		Where("seen = ?", false).
		Limit(1).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}
