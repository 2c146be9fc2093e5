package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a post and its author. Removed together with its post,
// never together with its author.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"commentId"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"postId"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
