package models

import "time"

// NotificationType discriminates notification records.
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationReply   NotificationType = "reply"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationReply:
		return true
	}
	return false
}

// Notification records that an actor engaged with something owned by the recipient.
// A like notification doubles as the record of the like itself: at most one exists per (post, actor).
type Notification struct {
	ID                 uint             `gorm:"primaryKey" json:"_id"`
	Type               NotificationType `gorm:"type:varchar(16);not null;index" json:"type"`
	PostID             uint             `gorm:"not null;uniqueIndex:idx_notifications_like_once,where:type = 'like'" json:"-"`
	Post               *Post            `gorm:"foreignKey:PostID" json:"blog,omitempty"`
	RecipientID        uint             `gorm:"not null;index" json:"notification_for"`
	ActorID            uint             `gorm:"not null;uniqueIndex:idx_notifications_like_once,where:type = 'like'" json:"-"`
	Actor              *User            `gorm:"foreignKey:ActorID" json:"user,omitempty"`
	CommentID          *uint            `gorm:"index" json:"-"`
	Comment            *Comment         `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
	RepliedOnCommentID *uint            `gorm:"index" json:"-"`
	RepliedOnComment   *Comment         `gorm:"foreignKey:RepliedOnCommentID" json:"replied_on_comment,omitempty"`
	ReplyID            *uint            `gorm:"index" json:"-"`
	Reply              *Comment         `gorm:"foreignKey:ReplyID" json:"reply,omitempty"`
	Seen               bool             `gorm:"not null;default:false" json:"seen"`
	CreatedAt          time.Time        `gorm:"index" json:"createdAt"`
}
