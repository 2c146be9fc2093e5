package service

import (
	"context"
	"sort"
	"time"

	"watched-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories backing the service tests. They mirror the database
// contracts that matter here: gorm.ErrRecordNotFound on misses and
// gorm.ErrDuplicatedKey where a unique index would fire.

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UsernamesByID(_ context.Context) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(r.users))
	for id, u := range r.users {
		out[id] = u.Username
	}
	return out, nil
}

type fakeTokenRepo struct {
	tokens map[uuid.UUID][]*model.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uuid.UUID][]*model.RefreshToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.tokens[token.UserID] = append(r.tokens[token.UserID], token)
	return nil
}

func (r *fakeTokenRepo) Rotate(_ context.Context, token *model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.tokens[token.UserID] = []*model.RefreshToken{token}
	return nil
}

func (r *fakeTokenRepo) LatestActive(_ context.Context, userID uuid.UUID) (*model.RefreshToken, error) {
	var latest *model.RefreshToken
	for _, t := range r.tokens[userID] {
		if t.Revoked {
			continue
		}
		if latest == nil || t.ExpiresAt.After(latest.ExpiresAt) {
			latest = t
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

type likeKey struct {
	postID uuid.UUID
	userID uuid.UUID
}

type fakePostRepo struct {
	posts map[uuid.UUID]*model.Post
	likes map[likeKey]bool
	users *fakeUserRepo
}

func newFakePostRepo(users *fakeUserRepo) *fakePostRepo {
	return &fakePostRepo{
		posts: make(map[uuid.UUID]*model.Post),
		likes: make(map[likeKey]bool),
		users: users,
	}
}

func (r *fakePostRepo) Create(_ context.Context, post *model.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// Mimic the Preload("User") join
	if u, ok := r.users.users[p.UserID]; ok {
		p.User = *u
	}
	return p, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]model.Post, error) {
	out := make([]model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if u, ok := r.users.users[p.UserID]; ok {
			p.User = *u
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, post *model.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	post.UpdatedAt = time.Now().UTC()
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	for k := range r.likes {
		if k.postID == id {
			delete(r.likes, k)
		}
	}
	return nil
}

func (r *fakePostRepo) LikeCount(_ context.Context, postID uuid.UUID) (int64, error) {
	var n int64
	for k := range r.likes {
		if k.postID == postID {
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) LikeCounts(_ context.Context) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64)
	for k := range r.likes {
		out[k.postID]++
	}
	return out, nil
}

func (r *fakePostRepo) HasLiked(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.likes[likeKey{postID, userID}], nil
}

func (r *fakePostRepo) CreateLike(_ context.Context, like *model.PostLike) error {
	key := likeKey{like.PostID, like.UserID}
	if r.likes[key] {
		return gorm.ErrDuplicatedKey
	}
	r.likes[key] = true
	return nil
}

func (r *fakePostRepo) DeleteLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	key := likeKey{postID, userID}
	if !r.likes[key] {
		return false, nil
	}
	delete(r.likes, key)
	return true, nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
	users    *fakeUserRepo
}

func newFakeCommentRepo(users *fakeUserRepo) *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*model.Comment), users: users}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	comment.CreatedAt = time.Now().UTC()
	comment.UpdatedAt = comment.CreatedAt
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if u, ok := r.users.users[c.UserID]; ok {
		c.User = *u
	}
	return c, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]model.Comment, error) {
	out := make([]model.Comment, 0)
	for _, c := range r.comments {
		if c.PostID != postID {
			continue
		}
		if u, ok := r.users.users[c.UserID]; ok {
			c.User = *u
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *model.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	comment.UpdatedAt = time.Now().UTC()
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.comments, id)
	return nil
}

type ratingKey struct {
	userID  uuid.UUID
	movieID uuid.UUID
}

type fakeMovieRepo struct {
	movies  map[uuid.UUID]*model.Movie
	ratings map[ratingKey]int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{
		movies:  make(map[uuid.UUID]*model.Movie),
		ratings: make(map[ratingKey]int),
	}
}

func (r *fakeMovieRepo) Create(_ context.Context, movie *model.Movie) error {
	if movie.ID == uuid.Nil {
		movie.ID = uuid.New()
	}
	r.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeMovieRepo) List(_ context.Context) ([]model.Movie, error) {
	out := make([]model.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// CreateRating inserts and recomputes the stored average, same as the
// transactional implementation.
func (r *fakeMovieRepo) CreateRating(_ context.Context, rating *model.MovieRating) error {
	key := ratingKey{rating.UserID, rating.MovieID}
	if _, ok := r.ratings[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.ratings[key] = rating.Rating

	movie, ok := r.movies[rating.MovieID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	var sum, n int
	for k, v := range r.ratings {
		if k.movieID == rating.MovieID {
			sum += v
			n++
		}
	}
	movie.AverageRating = float64(sum) / float64(n)
	return nil
}

type fakeAdminLogRepo struct {
	entries []*model.AdminLog
}

func (r *fakeAdminLogRepo) Log(_ context.Context, entry *model.AdminLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAdminLogRepo) List(_ context.Context, page, limit int) ([]model.AdminLog, int64, error) {
	out := make([]model.AdminLog, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, *r.entries[i])
	}
	start := (page - 1) * limit
	if start > len(out) {
		start = len(out)
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], int64(len(r.entries)), nil
}

type fakeActivityRepo struct {
	entries []*model.SiteActivityLog
}

func (r *fakeActivityRepo) Log(_ context.Context, entry *model.SiteActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeActivityRepo) ListSince(_ context.Context, since *time.Time) ([]model.SiteActivityLog, error) {
	out := make([]model.SiteActivityLog, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if since != nil && e.TimeOf.Before(*since) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, uuid.UUID, string, string) {}
