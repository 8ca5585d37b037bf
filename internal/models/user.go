// Package models contains data structures for the application's domain models.
package models

import "time"

// User is the read-only projection of an account owned by the identity directory.
// Engagement code only reads it to describe authors and actors.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"_id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Fullname   string    `json:"fullname"`
	ProfileImg string    `json:"profile_img"`
	CreatedAt  time.Time `json:"-"`
}
