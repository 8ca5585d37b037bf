package service

import (
	"context"
	"errors"
	"testing"

	"bloghub/internal/models"
	"bloghub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_ToggleLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		currentlyLiked bool
		claimChanged   bool
		wantLiked      bool
		wantDelta      []int
		wantEvents     int
	}{
		{"like inserts claim and increments", false, true, true, []int{1}, 1},
		{"stale like leaves counter alone", false, false, true, nil, 0},
		{"unlike removes claim and decrements", true, true, false, []int{-1}, 0},
		{"stale unlike leaves counter alone", true, false, false, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var deltas []int
			postRepo := noopPostRepo()
			postRepo.adjustCountersFn = func(_ context.Context, postID uint, d repository.CounterDelta) error {
				assert.Equal(t, uint(5), postID)
				deltas = append(deltas, d.Likes)
				return nil
			}
			notifRepo := noopNotificationRepo()
			notifRepo.createLikeIfAbsentFn = func(_ context.Context, postID, recipientID, actorID uint) (bool, error) {
				assert.Equal(t, uint(100), recipientID)
				assert.Equal(t, uint(7), actorID)
				return tt.claimChanged, nil
			}
			notifRepo.deleteLikeFn = func(_ context.Context, _, _ uint) (bool, error) {
				return tt.claimChanged, nil
			}
			events := &eventRecorder{}

			svc := NewLikeService(postRepo, notifRepo, events)
			res, err := svc.ToggleLike(context.Background(), ToggleLikeInput{PostID: 5, ActorID: 7, CurrentlyLiked: tt.currentlyLiked})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLiked, res.LikedByUser)
			assert.Equal(t, tt.wantDelta, deltas)
			assert.Len(t, events.Events(), tt.wantEvents)
		})
	}
}

func TestLikeService_ToggleLike_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	notifRepo := noopNotificationRepo()
	notifRepo.createLikeIfAbsentFn = func(_ context.Context, _, _, _ uint) (bool, error) {
		t.Fatal("no claim must be written for a missing post")
		return false, nil
	}

	svc := NewLikeService(postRepo, notifRepo, nil)
	_, err := svc.ToggleLike(context.Background(), ToggleLikeInput{PostID: 404, ActorID: 7})
	assertErrorCode(t, err, models.CodeNotFound)
}

func TestLikeService_ToggleLike_CounterFailure(t *testing.T) {
	t.Parallel()

	counterErr := errors.New("counter write failed")
	postRepo := noopPostRepo()
	postRepo.adjustCountersFn = func(_ context.Context, _ uint, _ repository.CounterDelta) error {
		return counterErr
	}

	svc := NewLikeService(postRepo, noopNotificationRepo(), nil)

	_, err := svc.ToggleLike(context.Background(), ToggleLikeInput{PostID: 5, ActorID: 7})
	assertPartialFailure(t, err)
	assert.ErrorIs(t, err, counterErr)

	_, err = svc.ToggleLike(context.Background(), ToggleLikeInput{PostID: 5, ActorID: 7, CurrentlyLiked: true})
	assertPartialFailure(t, err)
}

func TestLikeService_SelfLikeIsSilent(t *testing.T) {
	t.Parallel()

	events := &eventRecorder{}
	svc := NewLikeService(noopPostRepo(), noopNotificationRepo(), events)

	res, err := svc.ToggleLike(context.Background(), ToggleLikeInput{PostID: 5, ActorID: 100})
	require.NoError(t, err)
	assert.True(t, res.LikedByUser)
	assert.Empty(t, events.Events())
}

func TestLikeService_IsLiked(t *testing.T) {
	t.Parallel()

	notifRepo := noopNotificationRepo()
	notifRepo.likeExistsFn = func(_ context.Context, postID, actorID uint) (bool, error) {
		return postID == 5 && actorID == 7, nil
	}
	svc := NewLikeService(noopPostRepo(), notifRepo, nil)

	liked, err := svc.IsLiked(context.Background(), 5, 7)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.IsLiked(context.Background(), 5, 8)
	require.NoError(t, err)
	assert.False(t, liked)
}
