package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"watched-api/internal/config"
	"watched-api/internal/model"
	"watched-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// catalogueTitles is the fixed set of movies seeded from the OMDb provider.
var catalogueTitles = []string{
	"Inception", "Interstellar", "The Dark Knight", "Titanic", "Avatar",
	"The Matrix", "Gladiator", "The Godfather", "The Shawshank Redemption", "Pulp Fiction",
	"Forrest Gump", "Fight Club", "The Lord of the Rings", "The Avengers", "Iron Man",
	"The Lion King", "Star Wars", "Jurassic Park", "Harry Potter", "Deadpool",
	"Spider-Man", "The Batman", "Dune", "Doctor Strange", "Black Panther",
	"Joker", "The Prestige", "Mad Max: Fury Road", "Shutter Island", "Parasite",
}

type omdbMovieResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Poster     string `json:"Poster"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	ImdbRating string `json:"imdbRating"`
}

// MovieService serves the public catalogue and the rating flow.
type MovieService interface {
	List(ctx context.Context) ([]model.Movie, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	Rate(ctx context.Context, userID, movieID uuid.UUID, rating int) error
	FetchCatalogue(ctx context.Context) ([]model.Movie, error)
}

type movieService struct {
	movies   repository.MovieRepository
	activity ActivityRecorder
	client   *http.Client
	cfg      config.Config
}

// NewMovieService returns a new instance of MovieService
func NewMovieService(movies repository.MovieRepository, activity ActivityRecorder, client *http.Client, cfg config.Config) MovieService {
	if client == nil {
		client = http.DefaultClient
	}
	return &movieService{movies: movies, activity: activity, client: client, cfg: cfg}
}

func (s *movieService) List(ctx context.Context) ([]model.Movie, error) {
	return s.movies.List(ctx)
}

func (s *movieService) Get(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// Rate validates the score before touching the database, then lets the
// unique index arbitrate duplicates. Insert and average recompute happen in
// one transaction inside the repository.
func (s *movieService) Rate(ctx context.Context, userID, movieID uuid.UUID, rating int) error {
	if rating < 1 || rating > 10 {
		return ErrRatingRange
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		return ErrMovieNotFound
	}

	entry := &model.MovieRating{UserID: userID, MovieID: movieID, Rating: rating}
	if err := s.movies.CreateRating(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyRated
		}
		return err
	}

	s.activity.Record(ctx, userID, model.ActivityRating, model.OperationCreate)
	return nil
}

// FetchCatalogue pulls the fixed title list from OMDb and persists each hit.
// Provider failures propagate to the caller unretried.
func (s *movieService) FetchCatalogue(ctx context.Context) ([]model.Movie, error) {
	saved := make([]model.Movie, 0, len(catalogueTitles))

	for _, title := range catalogueTitles {
		endpoint := fmt.Sprintf("%s/?t=%s&apikey=%s", s.cfg.OMDbURL, url.QueryEscape(title), s.cfg.OMDbAPIKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}

		var payload omdbMovieResponse
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding OMDb response for %q: %w", title, err)
		}

		// "N/A" and friends parse to zero
		imdb, _ := decimal.NewFromString(payload.ImdbRating)

		movie := model.Movie{
			Title:      payload.Title,
			Year:       payload.Year,
			Genre:      payload.Genre,
			Director:   payload.Director,
			PosterURL:  payload.Poster,
			Actors:     payload.Actors,
			Plot:       payload.Plot,
			ImdbRating: imdb,
		}
		if err := s.movies.Create(ctx, &movie); err != nil {
			return nil, err
		}
		saved = append(saved, movie)
	}

	return saved, nil
}
