package repository

import (
	"context"

	"bloghub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines interface for comment and reply-link operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListTopLevel(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
	ListReplies(ctx context.Context, parentID uint, limit, offset int) ([]*models.Comment, error)
	Delete(ctx context.Context, id uint) (bool, error)
	AppendChild(ctx context.Context, parentID, childID uint) error
	RemoveChild(ctx context.Context, parentID, childID uint) error
	ChildIDs(ctx context.Context, parentID uint) ([]uint, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("Author").First(&comment, id).Error; err != nil {
		return nil, translate(err, "Comment", id)
	}
	if err := r.loadChildren(ctx, []*models.Comment{&comment}); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListTopLevel(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ? AND is_reply = ?", postID, false).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, r.loadChildren(ctx, comments)
}

// ListReplies pages through the children of parentID, newest first. A child is
// any comment linked under parentID or naming it as parent, matching ChildIDs.
func (r *commentRepository) ListReplies(ctx context.Context, parentID uint, limit, offset int) ([]*models.Comment, error) {
	linked := r.db.WithContext(ctx).
		Model(&models.CommentChild{}).
		Select("child_id").
		Where("parent_id = ?", parentID)

	var replies []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("comments.id IN (?) OR comments.parent_id = ?", linked, parentID).
		Order("comments.created_at DESC, comments.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, r.loadChildren(ctx, replies)
}

// Delete removes the comment row and reports whether this call removed it.
func (r *commentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AppendChild links childID under parentID. Appending an existing link is a no-op.
func (r *commentRepository) AppendChild(ctx context.Context, parentID, childID uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", parentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.NewNotFoundError("Comment", parentID)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.CommentChild{ParentID: parentID, ChildID: childID}).Error
}

func (r *commentRepository) RemoveChild(ctx context.Context, parentID, childID uint) error {
	return r.db.WithContext(ctx).
		Where("parent_id = ? AND child_id = ?", parentID, childID).
		Delete(&models.CommentChild{}).Error
}

// ChildIDs returns every comment that is linked under parentID or names it as parent.
func (r *commentRepository) ChildIDs(ctx context.Context, parentID uint) ([]uint, error) {
	var linked []uint
	if err := r.db.WithContext(ctx).
		Model(&models.CommentChild{}).
		Where("parent_id = ?", parentID).
		Order("id").
		Pluck("child_id", &linked).Error; err != nil {
		return nil, err
	}

	var byParent []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("parent_id = ?", parentID).
		Order("id").
		Pluck("id", &byParent).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{}, len(linked)+len(byParent))
	ids := make([]uint, 0, len(linked)+len(byParent))
	for _, id := range append(linked, byParent...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *commentRepository) loadChildren(ctx context.Context, comments []*models.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	ids := make([]uint, len(comments))
	byID := make(map[uint]*models.Comment, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
		c.Children = []uint{}
		byID[c.ID] = c
	}

	var links []models.CommentChild
	if err := r.db.WithContext(ctx).
		Where("parent_id IN ?", ids).
		Order("id").
		Find(&links).Error; err != nil {
		return err
	}
	for _, l := range links {
		if c, ok := byID[l.ParentID]; ok {
			c.Children = append(c.Children, l.ChildID)
		}
	}
	return nil
}
