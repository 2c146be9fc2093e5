package repository

import (
	"context"

	"watched-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines the interface for data access of User entities
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	UsernamesByID(ctx context.Context) (map[uuid.UUID]string, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernamesByID loads the full id -> username mapping, used to label site
// activity rows without per-row lookups.
func (r *userRepository) UsernamesByID(ctx context.Context) (map[uuid.UUID]string, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Select("id", "username").Find(&users).Error; err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		m[u.ID] = u.Username
	}
	return m, nil
}
