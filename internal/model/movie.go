package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movie holds catalogue metadata fetched from the OMDb provider plus the
// denormalized rating average. AverageRating is written only by the
// transactional recompute inside the rating repository and read everywhere
// else, so the stored value is the single source of truth.
type Movie struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"movieId"`
	Title         string          `gorm:"type:varchar(255);not null;index" json:"title"`
	Year          string          `gorm:"type:varchar(10)" json:"year"`
	Genre         string          `gorm:"type:varchar(255)" json:"genre"`
	Director      string          `gorm:"type:varchar(255)" json:"director"`
	PosterURL     string          `gorm:"type:varchar(512)" json:"posterUrl"`
	Actors        string          `gorm:"type:varchar(512)" json:"actors"`
	Plot          string          `gorm:"type:text" json:"plot"`
	ImdbRating    decimal.Decimal `gorm:"type:numeric(3,1)" json:"imdbRating"`
	AverageRating float64         `gorm:"not null;default:0" json:"averageRating"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

// MovieRating is one user's 1-10 score for one movie. The composite unique
// index enforces at most one rating per (user, movie).
type MovieRating struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"ratingId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_movie_ratings_user_movie" json:"userId"`
	MovieID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_movie_ratings_user_movie" json:"movieId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT;" json:"-"`
	Movie     Movie     `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;" json:"-"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
