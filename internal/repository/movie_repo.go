package repository

import (
	"context"

	"watched-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovieRepository defines the interface for data access of Movie and MovieRating entities
type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
	CreateRating(ctx context.Context, rating *model.MovieRating) error
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository returns a new instance of MovieRepository
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) List(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.WithContext(ctx).Order("title asc").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// CreateRating inserts the rating and refreshes the movie's denormalized
// average inside one transaction. This is the only code path that writes
// AverageRating; a duplicate (user, movie) pair surfaces as
// gorm.ErrDuplicatedKey from the unique index.
func (r *movieRepository) CreateRating(ctx context.Context, rating *model.MovieRating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		var avg float64
		err := tx.Model(&model.MovieRating{}).
			Where("movie_id = ?", rating.MovieID).
			Select("COALESCE(AVG(rating), 0)").
			Scan(&avg).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.Movie{}).
			Where("id = ?", rating.MovieID).
			Update("average_rating", avg).Error
	})
}
