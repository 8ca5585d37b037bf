package service

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"bloghub/internal/cache"
	"bloghub/internal/models"
	"bloghub/internal/observability"
	"bloghub/internal/repository"
	"bloghub/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

const (
	opAddComment    = "add_comment"
	opDeleteComment = "delete_comment"
)

type CommentService struct {
	commentRepo      repository.CommentRepository
	postRepo         repository.PostRepository
	notificationRepo repository.NotificationRepository
	events           EventPublisher
	opts             Options
}

type CreateCommentInput struct {
	PostID uint
	// PostAuthorID is the client's claim of the post author; zero skips the check.
	PostAuthorID uint
	ActorID      uint
	Body         string
	ParentID     *uint
	// NotificationID is the notification being answered, if any.
	NotificationID *uint
}

type DeleteCommentInput struct {
	CommentID   uint
	RequesterID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	notificationRepo repository.NotificationRepository,
	events EventPublisher,
	opts Options,
) *CommentService {
	return &CommentService{
		commentRepo:      commentRepo,
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		events:           events,
		opts:             opts.withDefaults(),
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (comment *models.Comment, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.CreateComment",
		attribute.Int64("post.id", int64(in.PostID)),
		attribute.Int64("actor.id", int64(in.ActorID)),
		attribute.Bool("comment.is_reply", in.ParentID != nil),
	)
	defer span.End()
	defer func() { finish(opAddComment, span, err) }()

	body := validation.SanitizeBody(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Write something to leave a comment")
	}
	if utf8.RuneCountInString(body) > s.opts.MaxCommentLength {
		return nil, models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", s.opts.MaxCommentLength))
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if in.PostAuthorID != 0 && in.PostAuthorID != post.AuthorID {
		return nil, models.NewValidationError("blog_author does not match the post author")
	}

	var parent *models.Comment
	if in.ParentID != nil {
		parent, err = s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != post.ID {
			return nil, models.NewValidationError("Cannot reply to a comment on another post")
		}
		if !parent.IsTopLevel() {
			return nil, models.NewValidationError("Replies cannot be nested")
		}
	}

	comment = &models.Comment{
		PostID:       post.ID,
		PostAuthorID: post.AuthorID,
		AuthorID:     in.ActorID,
		Body:         body,
		ParentID:     in.ParentID,
		IsReply:      parent != nil,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Children = []uint{}

	steps := newStepErrors(opAddComment)

	steps.record(ctx, "post_ref", s.postRepo.AddCommentRef(ctx, post.ID, comment.ID))
	delta := repository.CounterDelta{Comments: 1}
	if parent == nil {
		delta.ParentComments = 1
	}
	steps.record(ctx, "post_counters", s.postRepo.AdjustCounters(ctx, post.ID, delta))

	if parent != nil {
		steps.record(ctx, "parent_link", s.commentRepo.AppendChild(ctx, parent.ID, comment.ID))
	}

	notification := &models.Notification{
		Type:        models.NotificationComment,
		PostID:      post.ID,
		RecipientID: post.AuthorID,
		ActorID:     in.ActorID,
		CommentID:   &comment.ID,
	}
	if parent != nil {
		notification.Type = models.NotificationReply
		notification.RecipientID = parent.AuthorID
		notification.RepliedOnCommentID = &parent.ID
	}
	notified := !steps.record(ctx, "notification", s.notificationRepo.Create(ctx, notification))

	if in.NotificationID != nil {
		s.linkReply(ctx, *in.NotificationID, in.ActorID, comment.ID)
	}

	if notified && notification.RecipientID != in.ActorID {
		cache.InvalidateUnseen(ctx, notification.RecipientID)
		publish(ctx, s.events, notification.RecipientID, EventNotificationCreated, map[string]interface{}{
			"type":            notification.Type,
			"notification_id": notification.ID,
			"blog_id":         post.BlogID,
			"comment_id":      comment.ID,
			"user_id":         in.ActorID,
		})
	}

	if err := steps.err(); err != nil {
		return nil, err
	}
	return comment, nil
}

// linkReply records replyID on the notification the actor is answering.
func (s *CommentService) linkReply(ctx context.Context, notificationID, actorID, replyID uint) {
	updated, err := s.notificationRepo.SetReply(ctx, notificationID, actorID, replyID)
	if err != nil {
		observability.Logger.WarnContext(ctx, "failed to link reply to notification",
			slog.Uint64("notification_id", uint64(notificationID)),
			slog.String("error", err.Error()),
		)
		return
	}
	if !updated {
		observability.Logger.DebugContext(ctx, "reply link skipped",
			slog.Uint64("notification_id", uint64(notificationID)),
			slog.Uint64("actor_id", uint64(actorID)),
		)
	}
}

// ListComments returns a page of top-level comments on postID, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint, skip int) ([]*models.Comment, error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.ListComments",
		attribute.Int64("post.id", int64(postID)),
	)
	defer span.End()

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.commentRepo.ListTopLevel(ctx, postID, s.opts.CommentsPageSize, clampSkip(skip))
}

// GetReplies returns a page of the replies under commentID, newest first.
func (s *CommentService) GetReplies(ctx context.Context, commentID uint, skip int) ([]*models.Comment, error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.GetReplies",
		attribute.Int64("comment.id", int64(commentID)),
	)
	defer span.End()

	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.commentRepo.ListReplies(ctx, commentID, s.opts.RepliesPageSize, clampSkip(skip))
}

// DeleteComment removes the comment and every reply under it, along with the
// notifications and post counters they contributed. It returns the number of
// comments this call removed.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (deleted int, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.DeleteComment",
		attribute.Int64("comment.id", int64(in.CommentID)),
		attribute.Int64("requester.id", int64(in.RequesterID)),
	)
	defer span.End()
	defer func() { finish(opDeleteComment, span, err) }()

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return 0, err
	}
	if in.RequesterID != comment.AuthorID && in.RequesterID != comment.PostAuthorID {
		return 0, models.NewForbiddenError("You can't delete this comment")
	}

	steps := newStepErrors(opDeleteComment)
	deleted = s.sweep(ctx, in.CommentID, steps)

	observability.CascadeDeletedComments.Observe(float64(deleted))
	observability.Logger.InfoContext(ctx, "comment deleted",
		slog.Uint64("comment_id", uint64(in.CommentID)),
		slog.Int("removed", deleted),
	)
	span.SetAttributes(attribute.Int("comment.removed", deleted))

	if err := steps.err(); err != nil {
		return deleted, err
	}
	return deleted, nil
}

// sweep deletes id and then its subtree, depth first. Every step tolerates
// work already done by a concurrent sweep.
func (s *CommentService) sweep(ctx context.Context, id uint, steps *stepErrors) int {
	node, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if !models.IsNotFound(err) {
			steps.record(ctx, "load", err)
		}
		return 0
	}

	removed, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		steps.record(ctx, "delete", err)
		return 0
	}
	if !removed {
		return 0
	}
	count := 1

	if node.ParentID != nil {
		steps.record(ctx, "parent_link", s.commentRepo.RemoveChild(ctx, *node.ParentID, id))
	}

	recipients, err := s.notificationRepo.DeleteByComment(ctx, id)
	steps.record(ctx, "notifications", err)
	for _, recipient := range recipients {
		cache.InvalidateUnseen(ctx, recipient)
	}
	steps.record(ctx, "reply_links", s.notificationRepo.ClearReply(ctx, id))

	steps.record(ctx, "post_ref", s.postRepo.RemoveCommentRef(ctx, node.PostID, id))
	delta := repository.CounterDelta{Comments: -1}
	if node.IsTopLevel() {
		delta.ParentComments = -1
	}
	steps.record(ctx, "post_counters", s.postRepo.AdjustCounters(ctx, node.PostID, delta))

	children, err := s.commentRepo.ChildIDs(ctx, id)
	if steps.record(ctx, "children", err) {
		return count
	}
	for _, child := range children {
		count += s.sweep(ctx, child, steps)
	}
	return count
}
