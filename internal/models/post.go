package models

import "time"

// PostActivity holds the denormalized engagement counters of a post.
type PostActivity struct {
	TotalLikes          int64 `gorm:"not null;default:0" json:"total_likes"`
	TotalComments       int64 `gorm:"not null;default:0" json:"total_comments"`
	TotalReads          int64 `gorm:"not null;default:0" json:"total_reads"`
	TotalParentComments int64 `gorm:"not null;default:0" json:"total_parent_comments"`
}

// Post is the aggregate engagement writes counters into. Publishing is handled elsewhere.
type Post struct {
	ID          uint         `gorm:"primaryKey" json:"_id"`
	BlogID      string       `gorm:"uniqueIndex;not null" json:"blog_id"`
	Title       string       `gorm:"not null" json:"title"`
	AuthorID    uint         `gorm:"not null;index" json:"author"`
	Author      *User        `gorm:"foreignKey:AuthorID" json:"author_info,omitempty"`
	Draft       bool         `gorm:"not null;default:false" json:"draft"`
	Activity    PostActivity `gorm:"embedded" json:"activity"`
	CommentRefs []uint       `gorm:"-" json:"comments"`
	PublishedAt time.Time    `json:"publishedAt"`
}

// PostCommentRef records that a comment belongs to a post's comment list.
type PostCommentRef struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_comment_ref" json:"post_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_post_comment_ref;index" json:"comment_id"`
	CreatedAt time.Time `json:"-"`
}
