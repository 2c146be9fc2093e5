package repository

import (
	"context"

	"watched-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenRepository persists refresh tokens. Rotation replaces a user's whole
// token set in one transaction so a new-session event atomically supersedes
// the prior session rather than racing a delete against an insert.
type TokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	Rotate(ctx context.Context, token *model.RefreshToken) error
	LatestActive(ctx context.Context, userID uuid.UUID) (*model.RefreshToken, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository returns a new instance of TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) Rotate(ctx context.Context, token *model.RefreshToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&model.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// LatestActive returns the most-recently-expiring non-revoked token for the
// user, or gorm.ErrRecordNotFound when no live session exists.
func (r *tokenRepository) LatestActive(ctx context.Context, userID uuid.UUID) (*model.RefreshToken, error) {
	var token model.RefreshToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND revoked = false", userID).
		Order("expires_at desc").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}
