package repository

import (
	"context"

	"watched-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository defines the interface for data access of Post and PostLike entities
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error

	LikeCount(ctx context.Context, postID uuid.UUID) (int64, error)
	LikeCounts(ctx context.Context) (map[uuid.UUID]int64, error)
	HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	CreateLike(ctx context.Context, like *model.PostLike) error
	DeleteLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Preload("User").Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes the post row; comments and likes go with it via the cascade
// constraints.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) LikeCount(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// LikeCounts returns like totals for every post in one grouped query.
func (r *postRepository) LikeCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		PostID uuid.UUID
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&model.PostLike{}).
		Select("post_id, COUNT(*) as total").
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.Total
	}
	return counts, nil
}

func (r *postRepository) HasLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateLike inserts the like row; a duplicate (post, user) pair surfaces as
// gorm.ErrDuplicatedKey through the driver's error translation.
func (r *postRepository) CreateLike(ctx context.Context, like *model.PostLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *postRepository) DeleteLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
