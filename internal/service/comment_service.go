package service

import (
	"context"
	"log"
	"time"

	"watched-api/internal/model"
	"watched-api/internal/repository"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	PostID  uuid.UUID `json:"postId" binding:"required"`
	Content string    `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentDTO struct {
	CommentID uuid.UUID `json:"commentId"`
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentService mirrors the post permission pattern for comments.
type CommentService interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateCommentRequest) (*CommentDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*CommentDTO, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]CommentDTO, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, req UpdateCommentRequest) (*CommentDTO, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

type commentService struct {
	comments  repository.CommentRepository
	posts     repository.PostRepository
	users     repository.UserRepository
	adminLogs repository.AdminLogRepository
	activity  ActivityRecorder
}

// NewCommentService returns a new instance of CommentService
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
	adminLogs repository.AdminLogRepository,
	activity ActivityRecorder,
) CommentService {
	return &commentService{comments: comments, posts: posts, users: users, adminLogs: adminLogs, activity: activity}
}

func (s *commentService) Create(ctx context.Context, userID uuid.UUID, req CreateCommentRequest) (*CommentDTO, error) {
	if _, err := s.posts.GetByID(ctx, req.PostID); err != nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:  req.PostID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, userID, model.ActivityComment, model.OperationCreate)

	return s.Get(ctx, comment.ID)
}

func (s *commentService) Get(ctx context.Context, id uuid.UUID) (*CommentDTO, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrCommentNotFound
	}
	return toCommentDTO(comment), nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]CommentDTO, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	dtos := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, *toCommentDTO(&comments[i]))
	}
	return dtos, nil
}

func (s *commentService) Update(ctx context.Context, id, requesterID uuid.UUID, req UpdateCommentRequest) (*CommentDTO, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrCommentNotFound
	}

	requester := resolveRequester(ctx, s.users, requesterID)
	if !canModify(requester, requesterID, comment.UserID) {
		return nil, ErrCommentUpdateForbidden
	}

	content := req.Content
	adminActing := requester != nil && requester.IsAdmin && comment.UserID != requesterID
	if adminActing {
		content += " -edited by " + requester.Username
	}

	ownerID := comment.UserID
	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	if adminActing {
		s.logAdminAction(ctx, &model.AdminLog{
			AdminID:         requester.ID,
			Action:          model.ActionEditedComment,
			TargetCommentID: &comment.ID,
			TargetUserID:    &ownerID,
			CreatedAt:       time.Now().UTC(),
		})
	}
	s.activity.Record(ctx, requesterID, model.ActivityComment, model.OperationEdit)

	return s.Get(ctx, comment.ID)
}

func (s *commentService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return ErrCommentNotFound
	}

	requester := resolveRequester(ctx, s.users, requesterID)
	if !canModify(requester, requesterID, comment.UserID) {
		return ErrCommentDeleteForbidden
	}

	if requester != nil && requester.IsAdmin && comment.UserID != requesterID {
		s.logAdminAction(ctx, &model.AdminLog{
			AdminID:         requester.ID,
			Action:          model.ActionDeletedComment,
			TargetCommentID: &comment.ID,
			TargetUserID:    &comment.UserID,
			CreatedAt:       time.Now().UTC(),
		})
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, requesterID, model.ActivityComment, model.OperationDelete)
	return nil
}

func (s *commentService) logAdminAction(ctx context.Context, entry *model.AdminLog) {
	if err := s.adminLogs.Log(ctx, entry); err != nil {
		log.Printf("WARNING: failed to record admin action %q: %v", entry.Action, err)
	}
}

func toCommentDTO(comment *model.Comment) *CommentDTO {
	return &CommentDTO{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Username:  comment.User.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
