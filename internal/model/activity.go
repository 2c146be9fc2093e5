package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin action labels recorded whenever an admin mutates another user's content.
const (
	ActionEditedPost     = "Edited Post"
	ActionDeletedPost    = "Deleted Post"
	ActionEditedComment  = "Edited Comment"
	ActionDeletedComment = "Deleted Comment"
)

// Site activity categories and operations.
const (
	ActivityPost    = "Post"
	ActivityComment = "Comment"
	ActivityLike    = "Like"
	ActivityRating  = "Rating"

	OperationCreate = "Create"
	OperationEdit   = "Edit"
	OperationDelete = "Delete"
)

// AdminLog is the append-only trail of admin actions performed on other
// users' content. Target references are nulled rather than dropped when the
// underlying entity disappears, so the trail outlives what it describes.
type AdminLog struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"logId"`
	AdminID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"adminId"`
	Admin           User       `gorm:"foreignKey:AdminID" json:"-"`
	Action          string     `gorm:"type:varchar(50);not null;index" json:"action"`
	TargetUserID    *uuid.UUID `gorm:"type:uuid" json:"targetUserId,omitempty"`
	TargetUser      *User      `gorm:"foreignKey:TargetUserID;constraint:OnDelete:SET NULL;" json:"-"`
	TargetPostID    *uuid.UUID `gorm:"type:uuid" json:"targetPostId,omitempty"`
	TargetPost      *Post      `gorm:"foreignKey:TargetPostID;constraint:OnDelete:SET NULL;" json:"-"`
	TargetCommentID *uuid.UUID `gorm:"type:uuid" json:"targetCommentId,omitempty"`
	TargetComment   *Comment   `gorm:"foreignKey:TargetCommentID;constraint:OnDelete:SET NULL;" json:"-"`
	CreatedAt       time.Time  `gorm:"index" json:"createdAt"`
}

// SiteActivityLog records every content mutation on the site, admin or not.
// Append-only, written best-effort alongside the primary mutation.
type SiteActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Activity  string    `gorm:"type:varchar(50);not null" json:"activity"`
	Operation string    `gorm:"type:varchar(50);not null" json:"operation"`
	TimeOf    time.Time `gorm:"not null;index" json:"timeOf"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
}
