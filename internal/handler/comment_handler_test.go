package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"watched-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubCommentService struct {
	comment *service.CommentDTO
	err     error
}

func (s *stubCommentService) Create(context.Context, uuid.UUID, service.CreateCommentRequest) (*service.CommentDTO, error) {
	return s.comment, s.err
}
func (s *stubCommentService) Get(context.Context, uuid.UUID) (*service.CommentDTO, error) {
	return s.comment, s.err
}
func (s *stubCommentService) ListByPost(context.Context, uuid.UUID) ([]service.CommentDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []service.CommentDTO{*s.comment}, nil
}
func (s *stubCommentService) Update(context.Context, uuid.UUID, uuid.UUID, service.UpdateCommentRequest) (*service.CommentDTO, error) {
	return s.comment, s.err
}
func (s *stubCommentService) Delete(context.Context, uuid.UUID, uuid.UUID) error { return s.err }

func commentRouter(svc service.CommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCommentHandler(svc, passThrough)
	h.RegisterRoutes(router.Group("/api"))
	return router
}

func TestCreateCommentReturns200(t *testing.T) {
	dto := &service.CommentDTO{CommentID: uuid.New(), Content: "agreed", Username: "alice"}
	router := commentRouter(&stubCommentService{comment: dto})

	req := httptest.NewRequest(http.MethodPost, "/api/comments/create",
		strings.NewReader(`{"postId":"`+uuid.NewString()+`","content":"agreed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCreateCommentMissingPostIs404(t *testing.T) {
	router := commentRouter(&stubCommentService{err: service.ErrPostNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/comments/create",
		strings.NewReader(`{"postId":"`+uuid.NewString()+`","content":"agreed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
