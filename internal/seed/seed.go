package seed

import (
	"context"
	"fmt"
	"log/slog"

	"bloghub/internal/models"
	"bloghub/internal/observability"
	"bloghub/internal/repository"
	"bloghub/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Result summarizes what a seeding run created.
type Result struct {
	Users    []*models.User
	Posts    []*models.Post
	Likes    int
	Comments int
	Replies  int
}

// Seeder creates users and posts directly and all engagement through the
// services, so counters and notifications stay consistent.
type Seeder struct {
	db       *gorm.DB
	opts     Options
	factory  *Factory
	likes    *service.LikeService
	comments *service.CommentService
}

// NewSeeder wires a Seeder against db.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	postRepo := repository.NewPostRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &Seeder{
		db:       db,
		opts:     opts,
		factory:  NewFactory(db, opts),
		likes:    service.NewLikeService(postRepo, notificationRepo, nil),
		comments: service.NewCommentService(commentRepo, postRepo, notificationRepo, nil, service.DefaultOptions()),
	}
}

// ClearAll removes every engagement row, post and user.
func (s *Seeder) ClearAll(ctx context.Context) error {
	db := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{
		&models.Notification{},
		&models.CommentChild{},
		&models.PostCommentRef{},
		&models.Comment{},
		&models.Post{},
		&models.User{},
	} {
		if err := db.Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	observability.Logger.InfoContext(ctx, "cleared seed tables")
	return nil
}

// Run creates users and posts, then likes, comments and replies on those posts.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.factory.CreateUser(ctx)
		if err != nil {
			return res, err
		}
		res.Users = append(res.Users, user)
	}
	if len(res.Users) == 0 {
		return res, nil
	}

	for i := 0; i < s.opts.NumPosts; i++ {
		author := res.Users[gofakeit.Number(0, len(res.Users)-1)]
		post, err := s.factory.CreatePost(ctx, author)
		if err != nil {
			return res, err
		}
		res.Posts = append(res.Posts, post)

		if err := s.engage(ctx, post, res); err != nil {
			return res, err
		}
	}

	observability.Logger.InfoContext(ctx, "seeding complete",
		slog.Int("users", len(res.Users)),
		slog.Int("posts", len(res.Posts)),
		slog.Int("likes", res.Likes),
		slog.Int("comments", res.Comments),
		slog.Int("replies", res.Replies),
	)
	return res, nil
}

func (s *Seeder) engage(ctx context.Context, post *models.Post, res *Result) error {
	for _, liker := range s.pickUsers(res.Users, s.opts.MaxLikesPerPost) {
		if _, err := s.likes.ToggleLike(ctx, service.ToggleLikeInput{
			PostID:  post.ID,
			ActorID: liker.ID,
		}); err != nil {
			return fmt.Errorf("like post %d: %w", post.ID, err)
		}
		res.Likes++
	}

	for _, commenter := range s.pickUsers(res.Users, s.opts.MaxCommentsPerPost) {
		comment, err := s.comments.CreateComment(ctx, service.CreateCommentInput{
			PostID:       post.ID,
			PostAuthorID: post.AuthorID,
			ActorID:      commenter.ID,
			Body:         CommentBody(),
		})
		if err != nil {
			return fmt.Errorf("comment on post %d: %w", post.ID, err)
		}
		res.Comments++

		if !gofakeit.Bool() {
			continue
		}
		parentID := comment.ID
		if _, err := s.comments.CreateComment(ctx, service.CreateCommentInput{
			PostID:       post.ID,
			PostAuthorID: post.AuthorID,
			ActorID:      post.AuthorID,
			Body:         CommentBody(),
			ParentID:     &parentID,
		}); err != nil {
			return fmt.Errorf("reply on comment %d: %w", comment.ID, err)
		}
		res.Replies++
	}
	return nil
}

// pickUsers returns up to max distinct users in random order.
func (s *Seeder) pickUsers(users []*models.User, max int) []*models.User {
	if max <= 0 {
		return nil
	}
	idx := make([]int, len(users))
	for i := range idx {
		idx[i] = i
	}
	gofakeit.ShuffleInts(idx)

	n := gofakeit.Number(0, min(max, len(users)))
	out := make([]*models.User, 0, n)
	for _, i := range idx[:n] {
		out = append(out, users[i])
	}
	return out
}
