package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the central identity record. Guest accounts provisioned through the
// guest login flow are stored here exactly like registered users; there is no
// temporary flag, so guests persist indefinitely.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"userId"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Omit hash from JSON responses
	FullName     string    `gorm:"type:varchar(255)" json:"fullName,omitempty"`
	Email        string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	PhoneNumber  string    `gorm:"type:varchar(20)" json:"phoneNumber,omitempty"`
	Address      string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// RefreshToken stores the long-lived credential exchanged for new access
// tokens. A user holds at most one live session: login rotates the set
// wholesale, replacing every prior row for that user.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
