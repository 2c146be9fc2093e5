package database

import (
	"log"

	"watched-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM. TranslateError
// is enabled so unique-constraint violations surface as gorm.ErrDuplicatedKey;
// the constraints are the authoritative guard for "one like per (user, post)"
// and "one rating per (user, movie)".
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Movie{},
		&model.Post{},
		&model.Comment{},
		&model.PostLike{},
		&model.MovieRating{},
		&model.AdminLog{},
		&model.SiteActivityLog{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}
