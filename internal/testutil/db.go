// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"bloghub/internal/database"
	"bloghub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an isolated in-memory SQLite database with the full schema migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg := database.GormConfig()
	cfg.Logger = logger.Discard
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Fixture creates users and posts directly in the store.
type Fixture struct {
	t  testing.TB
	db *gorm.DB
	n  int
}

// NewFixture returns a Fixture bound to db.
func NewFixture(t testing.TB, db *gorm.DB) *Fixture {
	return &Fixture{t: t, db: db}
}

// User inserts a user with a unique username.
func (f *Fixture) User(name string) *models.User {
	f.t.Helper()
	f.n++
	u := &models.User{
		Username: fmt.Sprintf("%s_%d", name, f.n),
		Fullname: name,
	}
	require.NoError(f.t, f.db.Create(u).Error)
	return u
}

// Post inserts a published post owned by author.
func (f *Fixture) Post(author *models.User) *models.Post {
	f.t.Helper()
	f.n++
	p := &models.Post{
		BlogID:      fmt.Sprintf("post-%d-%s", f.n, uuid.NewString()[:8]),
		Title:       fmt.Sprintf("Post %d", f.n),
		AuthorID:    author.ID,
		PublishedAt: time.Now(),
	}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

// ReloadPost reads the post row back from the store.
func (f *Fixture) ReloadPost(id uint) *models.Post {
	f.t.Helper()
	var p models.Post
	require.NoError(f.t, f.db.First(&p, id).Error)
	return &p
}

// CountComments counts stored comments for postID, optionally only top-level ones.
func (f *Fixture) CountComments(postID uint, topLevelOnly bool) int64 {
	f.t.Helper()
	q := f.db.Model(&models.Comment{}).Where("post_id = ?", postID)
	if topLevelOnly {
		q = q.Where("is_reply = ?", false)
	}
	var n int64
	require.NoError(f.t, q.Count(&n).Error)
	return n
}

// Notifications returns every notification row matching the condition.
func (f *Fixture) Notifications(query string, args ...any) []models.Notification {
	f.t.Helper()
	var out []models.Notification
	require.NoError(f.t, f.db.Where(query, args...).Order("id").Find(&out).Error)
	return out
}
