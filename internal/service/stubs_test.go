package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bloghub/internal/models"
	"bloghub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listTopLevelFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	listRepliesFn  func(context.Context, uint, int, int) ([]*models.Comment, error)
	deleteFn       func(context.Context, uint) (bool, error)
	appendChildFn  func(context.Context, uint, uint) error
	removeChildFn  func(context.Context, uint, uint) error
	childIDsFn     func(context.Context, uint) ([]uint, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListTopLevel(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listTopLevelFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) ListReplies(ctx context.Context, parentID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listRepliesFn(ctx, parentID, limit, offset)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) AppendChild(ctx context.Context, parentID, childID uint) error {
	return s.appendChildFn(ctx, parentID, childID)
}
func (s *commentRepoStub) RemoveChild(ctx context.Context, parentID, childID uint) error {
	return s.removeChildFn(ctx, parentID, childID)
}
func (s *commentRepoStub) ChildIDs(ctx context.Context, parentID uint) ([]uint, error) {
	return s.childIDsFn(ctx, parentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id, PostID: 1}, nil },
		listTopLevelFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
			return nil, nil
		},
		listRepliesFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) {
			return nil, nil
		},
		deleteFn:      func(_ context.Context, _ uint) (bool, error) { return true, nil },
		appendChildFn: func(_ context.Context, _, _ uint) error { return nil },
		removeChildFn: func(_ context.Context, _, _ uint) error { return nil },
		childIDsFn:    func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn           func(context.Context, *models.Post) error
	getByIDFn          func(context.Context, uint) (*models.Post, error)
	adjustCountersFn   func(context.Context, uint, repository.CounterDelta) error
	addCommentRefFn    func(context.Context, uint, uint) error
	removeCommentRefFn func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error {
	return s.createFn(ctx, p)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) AdjustCounters(ctx context.Context, postID uint, delta repository.CounterDelta) error {
	return s.adjustCountersFn(ctx, postID, delta)
}
func (s *postRepoStub) AddCommentRef(ctx context.Context, postID, commentID uint) error {
	return s.addCommentRefFn(ctx, postID, commentID)
}
func (s *postRepoStub) RemoveCommentRef(ctx context.Context, postID, commentID uint) error {
	return s.removeCommentRefFn(ctx, postID, commentID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, BlogID: "post", AuthorID: 100}, nil
		},
		adjustCountersFn:   func(_ context.Context, _ uint, _ repository.CounterDelta) error { return nil },
		addCommentRefFn:    func(_ context.Context, _, _ uint) error { return nil },
		removeCommentRefFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	createFn             func(context.Context, *models.Notification) error
	createLikeIfAbsentFn func(context.Context, uint, uint, uint) (bool, error)
	deleteLikeFn         func(context.Context, uint, uint) (bool, error)
	likeExistsFn         func(context.Context, uint, uint) (bool, error)
	deleteByCommentFn    func(context.Context, uint) ([]uint, error)
	clearReplyFn         func(context.Context, uint) error
	setReplyFn           func(context.Context, uint, uint, uint) (bool, error)
	listFn               func(context.Context, repository.NotificationQuery) ([]*models.Notification, error)
	countFn              func(context.Context, uint, models.NotificationType) (int64, error)
	markSeenFn           func(context.Context, uint) error
	hasUnseenFn          func(context.Context, uint) (bool, error)
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) CreateLikeIfAbsent(ctx context.Context, postID, recipientID, actorID uint) (bool, error) {
	return s.createLikeIfAbsentFn(ctx, postID, recipientID, actorID)
}
func (s *notificationRepoStub) DeleteLike(ctx context.Context, postID, actorID uint) (bool, error) {
	return s.deleteLikeFn(ctx, postID, actorID)
}
func (s *notificationRepoStub) LikeExists(ctx context.Context, postID, actorID uint) (bool, error) {
	return s.likeExistsFn(ctx, postID, actorID)
}
func (s *notificationRepoStub) DeleteByComment(ctx context.Context, commentID uint) ([]uint, error) {
	return s.deleteByCommentFn(ctx, commentID)
}
func (s *notificationRepoStub) ClearReply(ctx context.Context, replyID uint) error {
	return s.clearReplyFn(ctx, replyID)
}
func (s *notificationRepoStub) SetReply(ctx context.Context, notificationID, recipientID, replyID uint) (bool, error) {
	return s.setReplyFn(ctx, notificationID, recipientID, replyID)
}
func (s *notificationRepoStub) List(ctx context.Context, q repository.NotificationQuery) ([]*models.Notification, error) {
	return s.listFn(ctx, q)
}
func (s *notificationRepoStub) Count(ctx context.Context, recipientID uint, typ models.NotificationType) (int64, error) {
	return s.countFn(ctx, recipientID, typ)
}
func (s *notificationRepoStub) MarkSeen(ctx context.Context, recipientID uint) error {
	return s.markSeenFn(ctx, recipientID)
}
func (s *notificationRepoStub) HasUnseen(ctx context.Context, recipientID uint) (bool, error) {
	return s.hasUnseenFn(ctx, recipientID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:             func(_ context.Context, _ *models.Notification) error { return nil },
		createLikeIfAbsentFn: func(_ context.Context, _, _, _ uint) (bool, error) { return true, nil },
		deleteLikeFn:         func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		likeExistsFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		deleteByCommentFn:    func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		clearReplyFn:         func(_ context.Context, _ uint) error { return nil },
		setReplyFn:           func(_ context.Context, _, _, _ uint) (bool, error) { return true, nil },
		listFn: func(_ context.Context, _ repository.NotificationQuery) ([]*models.Notification, error) {
			return nil, nil
		},
		countFn:     func(_ context.Context, _ uint, _ models.NotificationType) (int64, error) { return 0, nil },
		markSeenFn:  func(_ context.Context, _ uint) error { return nil },
		hasUnseenFn: func(_ context.Context, _ uint) (bool, error) { return false, nil },
	}
}

type publishedEvent struct {
	UserID  uint
	Type    string
	Payload map[string]interface{}
}

// eventRecorder captures realtime events published by the services.
type eventRecorder struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (r *eventRecorder) PublishUserEvent(_ context.Context, userID uint, eventType string, payload map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, publishedEvent{UserID: userID, Type: eventType, Payload: payload})
}

func (r *eventRecorder) Events() []publishedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]publishedEvent(nil), r.events...)
}

// assertErrorCode asserts that err is an AppError with the given code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertErrorCode(t, err, models.CodeValidation)
}

func assertPartialFailure(t *testing.T, err error) {
	t.Helper()
	assertErrorCode(t, err, models.CodePartialFailure)
}

func uintPtr(v uint) *uint { return &v }
