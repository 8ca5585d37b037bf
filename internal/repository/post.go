package repository

import (
	"context"

	"bloghub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CounterDelta is a signed change to a post's engagement counters.
type CounterDelta struct {
	Likes          int
	Comments       int
	ParentComments int
}

// PostRepository defines the interface for the post aggregate engagement writes into
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	AdjustCounters(ctx context.Context, postID uint, delta CounterDelta) error
	AddCommentRef(ctx context.Context, postID, commentID uint) error
	RemoveCommentRef(ctx context.Context, postID, commentID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err, "Post", id)
	}

	refs := []uint{}
	if err := r.db.WithContext(ctx).
		Model(&models.PostCommentRef{}).
		Where("post_id = ?", id).
		Order("id").
		Pluck("comment_id", &refs).Error; err != nil {
		return nil, err
	}
	post.CommentRefs = refs
	return &post, nil
}

// AdjustCounters applies delta atomically in the store. Counters are clamped at zero.
func (r *postRepository) AdjustCounters(ctx context.Context, postID uint, delta CounterDelta) error {
	updates := map[string]any{}
	if delta.Likes != 0 {
		updates["total_likes"] = clampedAdd("total_likes", delta.Likes)
	}
	if delta.Comments != 0 {
		updates["total_comments"] = clampedAdd("total_comments", delta.Comments)
	}
	if delta.ParentComments != 0 {
		updates["total_parent_comments"] = clampedAdd("total_parent_comments", delta.ParentComments)
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).UpdateColumns(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", postID)
	}
	return nil
}

func (r *postRepository) AddCommentRef(ctx context.Context, postID, commentID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostCommentRef{PostID: postID, CommentID: commentID}).Error
}

func (r *postRepository) RemoveCommentRef(ctx context.Context, postID, commentID uint) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND comment_id = ?", postID, commentID).
		Delete(&models.PostCommentRef{}).Error
}
