// Package seed provides helpers to create demo data for the engagement
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bloghub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures how much data the seeder creates.
type Options struct {
	NumUsers int
	NumPosts int
	// MaxDays bounds how far back publish dates are spread.
	MaxDays int
	// MaxLikesPerPost and MaxCommentsPerPost cap engagement per post.
	MaxLikesPerPost    int
	MaxCommentsPerPost int
}

// DefaultOptions returns a small but realistic data set.
func DefaultOptions() Options {
	return Options{
		NumUsers:           20,
		NumPosts:           40,
		MaxDays:            90,
		MaxLikesPerPost:    8,
		MaxCommentsPerPost: 6,
	}
}

// Factory builds users and posts and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	first, last := gofakeit.FirstName(), gofakeit.LastName()
	user := &models.User{
		Username:   strings.ToLower(fmt.Sprintf("%s%s%d", first, last, gofakeit.Number(100, 9999))),
		Fullname:   first + " " + last,
		ProfileImg: fmt.Sprintf("https://api.dicebear.com/6.x/notionists-neutral/svg?seed=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser constructs and persists a sample user.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// BuildPost constructs a published post by author without persisting it.
func (f *Factory) BuildPost(author *models.User, overrides ...func(*models.Post)) *models.Post {
	title := strings.TrimSuffix(gofakeit.HipsterSentence(gofakeit.Number(3, 8)), ".")
	post := &models.Post{
		BlogID:   fmt.Sprintf("%s-%s", slugify(title), gofakeit.UUID()[:8]),
		Title:    title,
		AuthorID: author.ID,
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(gofakeit.Number(0, maxDays*24*60)) * time.Minute
	post.PublishedAt = time.Now().Add(-back)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample post.
func (f *Factory) CreatePost(ctx context.Context, author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(author, overrides...)
	if err := f.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// CommentBody returns a short plausible comment.
func CommentBody() string {
	return gofakeit.Sentence(gofakeit.Number(4, 18))
}

func slugify(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(fields, "-")
}
