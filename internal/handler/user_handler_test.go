package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"watched-api/internal/middleware"
	"watched-api/internal/model"
	"watched-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubAuthService struct {
	user *model.User
	err  error
}

func (s *stubAuthService) Register(context.Context, service.RegisterRequest) (*model.User, error) {
	return s.user, s.err
}
func (s *stubAuthService) Login(context.Context, string, string) (*service.TokenPair, error) {
	return &service.TokenPair{}, s.err
}
func (s *stubAuthService) LoginAsGuest(context.Context) (*service.GuestSession, error) {
	return &service.GuestSession{}, s.err
}
func (s *stubAuthService) Refresh(context.Context, uuid.UUID, string) (*service.TokenPair, error) {
	return &service.TokenPair{}, s.err
}
func (s *stubAuthService) IssueAccessToken(*model.User) (string, error) { return "", s.err }
func (s *stubAuthService) IssueRefreshToken(context.Context, uuid.UUID) (string, error) {
	return "", s.err
}
func (s *stubAuthService) RotateRefreshToken(context.Context, uuid.UUID) (string, error) {
	return "", s.err
}

func userRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewUserHandler(svc, passThrough, nil)
	h.RegisterRoutes(router.Group("/api"))
	return router
}

func TestSignupReturns200(t *testing.T) {
	router := userRouter(&stubAuthService{user: &model.User{ID: uuid.New(), Username: "alice"}})

	req := httptest.NewRequest(http.MethodPost, "/api/users/signup",
		strings.NewReader(`{"username":"alice","passwordHash":"pw","fullName":"Alice","email":"a@b.c","phoneNumber":"1","address":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSignupDuplicateUserIs400(t *testing.T) {
	router := userRouter(&stubAuthService{err: service.ErrUserExists})

	req := httptest.NewRequest(http.MethodPost, "/api/users/signup",
		strings.NewReader(`{"username":"alice","passwordHash":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestThrottleGuardsOnlyCredentialRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := middleware.NewRateLimiter(0.1, 1)
	defer rl.Stop()

	router := gin.New()
	userHandler := NewUserHandler(&stubAuthService{user: &model.User{}}, passThrough, rl.Handler())
	userHandler.RegisterRoutes(router.Group("/api"))
	postHandler := NewPostHandler(&stubPostService{post: &service.PostDTO{}}, passThrough, passThrough)
	postHandler.RegisterRoutes(router.Group("/api"))

	var limited int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"username":"alice","passwordHash":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited == 0 {
		t.Fatal("login never throttled")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/posts/"+uuid.NewString(), nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code == http.StatusTooManyRequests {
		t.Fatalf("post route throttled, limiter must cover auth routes only")
	}
}
