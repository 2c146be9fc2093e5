package service

import (
	"context"
	"errors"
	"log"
	"time"

	"watched-api/internal/model"
	"watched-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreatePostRequest struct {
	MovieID uuid.UUID `json:"movieId" binding:"required"`
	Title   string    `json:"title" binding:"required"`
	Content string    `json:"content" binding:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PostDTO is the wire shape for posts: the entity joined with its author's
// username and the current like total.
type PostDTO struct {
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	MovieID   uuid.UUID `json:"movieId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	LikeCount int64     `json:"likeCount"`
	HasLiked  bool      `json:"hasLiked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostService implements the review-post operations, all gated by the shared
// owner-or-admin permission pattern.
type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, req CreatePostRequest) (*PostDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*PostDTO, error)
	ListAll(ctx context.Context, currentUserID uuid.UUID) ([]PostDTO, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, req UpdatePostRequest) (*PostDTO, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
	Like(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error)
	Unlike(ctx context.Context, postID, userID uuid.UUID) error
}

type postService struct {
	posts     repository.PostRepository
	users     repository.UserRepository
	movies    repository.MovieRepository
	adminLogs repository.AdminLogRepository
	activity  ActivityRecorder
}

// NewPostService returns a new instance of PostService
func NewPostService(
	posts repository.PostRepository,
	users repository.UserRepository,
	movies repository.MovieRepository,
	adminLogs repository.AdminLogRepository,
	activity ActivityRecorder,
) PostService {
	return &postService{posts: posts, users: users, movies: movies, adminLogs: adminLogs, activity: activity}
}

func (s *postService) Create(ctx context.Context, userID uuid.UUID, req CreatePostRequest) (*PostDTO, error) {
	if _, err := s.movies.GetByID(ctx, req.MovieID); err != nil {
		return nil, ErrInvalidMovieID
	}

	post := &model.Post{
		UserID:  userID,
		MovieID: req.MovieID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, userID, model.ActivityPost, model.OperationCreate)

	return s.Get(ctx, post.ID)
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*PostDTO, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	likes, err := s.posts.LikeCount(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toPostDTO(post)
	dto.LikeCount = likes
	return dto, nil
}

// ListAll returns every post with like totals; when the caller is known,
// HasLiked marks the posts they already liked.
func (s *postService) ListAll(ctx context.Context, currentUserID uuid.UUID) ([]PostDTO, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.posts.LikeCounts(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]PostDTO, 0, len(posts))
	for i := range posts {
		dto := toPostDTO(&posts[i])
		dto.LikeCount = counts[posts[i].ID]
		if currentUserID != uuid.Nil {
			liked, err := s.posts.HasLiked(ctx, posts[i].ID, currentUserID)
			if err != nil {
				return nil, err
			}
			dto.HasLiked = liked
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *postService) Update(ctx context.Context, id, requesterID uuid.UUID, req UpdatePostRequest) (*PostDTO, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	requester := resolveRequester(ctx, s.users, requesterID)
	if !canModify(requester, requesterID, post.UserID) {
		return nil, ErrPostUpdateForbidden
	}

	content := req.Content
	adminActing := requester != nil && requester.IsAdmin && post.UserID != requesterID
	if adminActing {
		content += " -edited by " + requester.Username
	}

	ownerID := post.UserID
	post.Title = req.Title
	post.Content = content
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	if adminActing {
		s.logAdminAction(ctx, &model.AdminLog{
			AdminID:      requester.ID,
			Action:       model.ActionEditedPost,
			TargetPostID: &post.ID,
			TargetUserID: &ownerID,
			CreatedAt:    time.Now().UTC(),
		})
	}
	s.activity.Record(ctx, requesterID, model.ActivityPost, model.OperationEdit)

	return s.Get(ctx, post.ID)
}

func (s *postService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return ErrPostNotFound
	}

	requester := resolveRequester(ctx, s.users, requesterID)
	if !canModify(requester, requesterID, post.UserID) {
		return ErrPostDeleteForbidden
	}

	// Write the trail entry while the post row still exists; the SET NULL
	// constraint clears the post reference once the delete lands.
	if requester != nil && requester.IsAdmin && post.UserID != requesterID {
		s.logAdminAction(ctx, &model.AdminLog{
			AdminID:      requester.ID,
			Action:       model.ActionDeletedPost,
			TargetPostID: &post.ID,
			TargetUserID: &post.UserID,
			CreatedAt:    time.Now().UTC(),
		})
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, requesterID, model.ActivityPost, model.OperationDelete)
	return nil
}

func (s *postService) Like(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, ErrLikePostNotFound
	}
	if post.UserID == userID {
		return nil, ErrSelfLike
	}

	like := &model.PostLike{PostID: postID, UserID: userID}
	if err := s.posts.CreateLike(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	s.activity.Record(ctx, userID, model.ActivityLike, model.OperationCreate)
	return like, nil
}

func (s *postService) Unlike(ctx context.Context, postID, userID uuid.UUID) error {
	found, err := s.posts.DeleteLike(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotLiked
	}

	s.activity.Record(ctx, userID, model.ActivityLike, model.OperationDelete)
	return nil
}

// logAdminAction appends to the audit trail best-effort: a failed insert must
// not fail the mutation it describes.
func (s *postService) logAdminAction(ctx context.Context, entry *model.AdminLog) {
	if err := s.adminLogs.Log(ctx, entry); err != nil {
		log.Printf("WARNING: failed to record admin action %q: %v", entry.Action, err)
	}
}

func toPostDTO(post *model.Post) *PostDTO {
	return &PostDTO{
		PostID:    post.ID,
		UserID:    post.UserID,
		MovieID:   post.MovieID,
		Title:     post.Title,
		Content:   post.Content,
		Username:  post.User.Username,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
