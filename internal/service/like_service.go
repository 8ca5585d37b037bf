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

const opLikeBlog = "like_blog"

type LikeService struct {
	postRepo         repository.PostRepository
	notificationRepo repository.NotificationRepository
	events           EventPublisher
}

type ToggleLikeInput struct {
	PostID uint
	// ActorID is the authenticated user.
	ActorID uint
	// CurrentlyLiked is the client's view of the like before the toggle.
	CurrentlyLiked bool
}

// LikeResult carries the like state after the toggle.
type LikeResult struct {
	LikedByUser bool `json:"likedByUser"`
}

func NewLikeService(
	postRepo repository.PostRepository,
	notificationRepo repository.NotificationRepository,
	events EventPublisher,
) *LikeService {
	return &LikeService{
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		events:           events,
	}
}

// ToggleLike moves the actor's like to the opposite of the client's view.
// The like notification is the claim: the counter only moves when the claim changed.
func (s *LikeService) ToggleLike(ctx context.Context, in ToggleLikeInput) (result *LikeResult, err error) {
	ctx, span := observability.StartSpan(ctx, "LikeService.ToggleLike",
		attribute.Int64("post.id", int64(in.PostID)),
		attribute.Int64("actor.id", int64(in.ActorID)),
		attribute.Bool("like.currently_liked", in.CurrentlyLiked),
	)
	defer span.End()
	defer func() { finish(opLikeBlog, span, err) }()

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !in.CurrentlyLiked {
		return s.like(ctx, post, in.ActorID)
	}
	return s.unlike(ctx, post, in.ActorID)
}

func (s *LikeService) like(ctx context.Context, post *models.Post, actorID uint) (*LikeResult, error) {
	inserted, err := s.notificationRepo.CreateLikeIfAbsent(ctx, post.ID, post.AuthorID, actorID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		observability.Logger.DebugContext(ctx, "stale like ignored",
			slog.Uint64("post_id", uint64(post.ID)),
			slog.Uint64("actor_id", uint64(actorID)),
		)
		return &LikeResult{LikedByUser: true}, nil
	}

	steps := newStepErrors(opLikeBlog)
	steps.record(ctx, "post_counters", s.postRepo.AdjustCounters(ctx, post.ID, repository.CounterDelta{Likes: 1}))

	if post.AuthorID != actorID {
		cache.InvalidateUnseen(ctx, post.AuthorID)
		publish(ctx, s.events, post.AuthorID, EventNotificationCreated, map[string]interface{}{
			"type":    models.NotificationLike,
			"blog_id": post.BlogID,
			"user_id": actorID,
		})
	}

	if err := steps.err(); err != nil {
		return nil, err
	}
	return &LikeResult{LikedByUser: true}, nil
}

func (s *LikeService) unlike(ctx context.Context, post *models.Post, actorID uint) (*LikeResult, error) {
	removed, err := s.notificationRepo.DeleteLike(ctx, post.ID, actorID)
	if err != nil {
		return nil, err
	}
	if !removed {
		observability.Logger.DebugContext(ctx, "stale unlike ignored",
			slog.Uint64("post_id", uint64(post.ID)),
			slog.Uint64("actor_id", uint64(actorID)),
		)
		return &LikeResult{LikedByUser: false}, nil
	}

	if err := s.postRepo.AdjustCounters(ctx, post.ID, repository.CounterDelta{Likes: -1}); err != nil {
		steps := newStepErrors(opLikeBlog)
		steps.record(ctx, "post_counters", err)
		return nil, steps.err()
	}
	cache.InvalidateUnseen(ctx, post.AuthorID)
	return &LikeResult{LikedByUser: false}, nil
}

// IsLiked reports whether actorID currently likes postID.
func (s *LikeService) IsLiked(ctx context.Context, postID, actorID uint) (bool, error) {
	ctx, span := observability.StartSpan(ctx, "LikeService.IsLiked",
		attribute.Int64("post.id", int64(postID)),
	)
	defer span.End()

	liked, err := s.notificationRepo.LikeExists(ctx, postID, actorID)
	if err != nil {
		span.SetError(err)
		return false, err
	}
	return liked, nil
}
