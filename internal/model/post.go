package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a user-authored movie review. Deleting a post cascades to its
// comments and likes; users themselves are never deleted while they own
// content (referential integrity favors auditability over deletability).
type Post struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"postId"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;" json:"-"`
	MovieID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"movieId"`
	Movie     Movie      `gorm:"foreignKey:MovieID" json:"-"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Comments  []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"-"`
	Likes     []PostLike `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"-"`
}

// PostLike records one user liking one post. The composite unique index is
// the authoritative guard against double-liking; application checks are an
// optimization only.
type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"likeId"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"postId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
