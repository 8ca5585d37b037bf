package models

import "time"

// Comment is a comment on a post, or a reply to a top-level comment.
// Comments are hard deleted; a removed comment takes its reply subtree with it.
type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"_id"`
	PostID       uint      `gorm:"not null;index" json:"blog_id"`
	PostAuthorID uint      `gorm:"not null" json:"blog_author"`
	AuthorID     uint      `gorm:"not null;index" json:"user_id"`
	Author       *User     `gorm:"foreignKey:AuthorID" json:"commented_by,omitempty"`
	Body         string    `gorm:"type:text;not null" json:"comment"`
	ParentID     *uint     `gorm:"index" json:"parent,omitempty"`
	IsReply      bool      `gorm:"not null;default:false" json:"isReply"`
	Children     []uint    `gorm:"-" json:"children"`
	CreatedAt    time.Time `gorm:"index" json:"commentedAt"`
}

// IsTopLevel reports whether the comment is attached directly to the post.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

// CommentChild links a parent comment to one of its replies, in append order.
type CommentChild struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	ParentID  uint      `gorm:"not null;uniqueIndex:idx_comment_child" json:"parent_id"`
	ChildID   uint      `gorm:"not null;uniqueIndex:idx_comment_child;index" json:"child_id"`
	CreatedAt time.Time `json:"-"`
}
