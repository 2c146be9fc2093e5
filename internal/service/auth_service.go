package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"math/big"
	"strings"
	"time"

	"watched-api/internal/config"
	"watched-api/internal/model"
	"watched-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest carries the signup payload. The password travels in the
// "passwordHash" field; the name is historical, the value is the raw password.
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"passwordHash"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"passwordHash"`
}

type RefreshRequest struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// TokenPair is the credential set returned by login, guest login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// GuestSession describes a freshly provisioned throwaway account. The
// generated password is returned once here and never again.
type GuestSession struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Password string    `json:"password"`
	TokenPair
}

// AuthService owns the credential store contract and the token lifecycle:
// registration, login, guest provisioning, access-token issuance and
// refresh-token rotation/validation.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*model.User, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	LoginAsGuest(ctx context.Context) (*GuestSession, error)
	Refresh(ctx context.Context, userID uuid.UUID, presented string) (*TokenPair, error)

	IssueAccessToken(user *model.User) (string, error)
	IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)
	RotateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)
}

type authService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	cfg    config.Config
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, cfg config.Config) AuthService {
	return &authService{users: users, tokens: tokens, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" ||
		strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.PhoneNumber) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, ErrFieldsRequired
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrCredentialsMissing
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrUnknownUsername
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}

	refresh, err := s.RotateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	access, err := s.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) LoginAsGuest(ctx context.Context) (*GuestSession, error) {
	username := "Guest" + randomLetters(8)
	password := randomLetters(12)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	guest := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, guest); err != nil {
		return nil, err
	}

	refresh, err := s.RotateRefreshToken(ctx, guest.ID)
	if err != nil {
		return nil, err
	}
	access, err := s.IssueAccessToken(guest)
	if err != nil {
		return nil, err
	}

	return &GuestSession{
		UserID:    guest.ID,
		Username:  guest.Username,
		Password:  password,
		TokenPair: TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}

// Refresh exchanges a live refresh token for a fresh access token. The
// refresh token itself is NOT rotated here, only login rotates. Absence,
// mismatch and expiry all collapse into one opaque error so callers cannot
// distinguish "wrong token" from "no token".
func (s *authService) Refresh(ctx context.Context, userID uuid.UUID, presented string) (*TokenPair, error) {
	token, err := s.tokens.LatestActive(ctx, userID)
	if err != nil {
		return nil, ErrRefreshExpired
	}
	if token.Token != presented || !token.ExpiresAt.After(time.Now().UTC()) {
		return nil, ErrRefreshExpired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrRefreshExpired
	}
	access, err := s.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: token.Token}, nil
}

// IssueAccessToken mints the short-lived stateless credential. Claims carry
// identity only; the admin flag is deliberately absent so role changes take
// effect on the next request instead of the next login.
func (s *authService) IssueAccessToken(user *model.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"userId":   user.ID.String(),
		"username": user.Username,
		"iss":      s.cfg.JWTIssuer,
		"aud":      s.cfg.JWTAudience,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.AccessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}

// IssueRefreshToken persists a single new opaque token without touching any
// existing session rows.
func (s *authService) IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.newRefreshToken(userID)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", err
	}
	return token.Token, nil
}

// RotateRefreshToken atomically replaces every refresh token the user holds
// with one new token. This is the only invalidation mechanism; there is no
// logout/revoke endpoint.
func (s *authService) RotateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.newRefreshToken(userID)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Rotate(ctx, token); err != nil {
		return "", err
	}
	return token.Token, nil
}

func (s *authService) newRefreshToken(userID uuid.UUID) (*model.RefreshToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return &model.RefreshToken{
		UserID:    userID,
		Token:     base64.RawURLEncoding.EncodeToString(buf),
		ExpiresAt: time.Now().UTC().Add(s.cfg.RefreshTTL),
		Revoked:   false,
	}, nil
}

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func randomLetters(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(letters)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing is unrecoverable for credential material
			panic(err)
		}
		out[i] = letters[idx.Int64()]
	}
	return string(out)
}
