package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"placehub-backend/internal/models"
	"placehub-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrResetInvalid       = errors.New("reset token is invalid or expired")
)

const resetTokenTTL = 30 * time.Minute

type AuthService struct {
	users  repository.UserRepository
	secret string
}

func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", errors.New("a valid email is required")
	}
	if len(password) < 8 {
		return nil, "", errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs a 7-day HS256 token carrying the user id in both uid and
// sub, matching what the middleware accepts.
func (s *AuthService) IssueToken(userID bson.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid": userID.Hex(),
		"sub": userID.Hex(),
		"iat": now.Unix(),
		"exp": now.Add(7 * 24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

// ForgotPassword issues a reset token. The (nil, nil) return on an unknown
// email keeps the endpoint from leaking which addresses are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*models.PasswordReset, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	reset := &models.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := s.users.CreateReset(ctx, reset); err != nil {
		return nil, err
	}
	return reset, nil
}

func (s *AuthService) VerifyResetToken(ctx context.Context, token string) error {
	reset, err := s.users.FindReset(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrResetInvalid
	}
	if err != nil {
		return err
	}
	if reset.Used || time.Now().UTC().After(reset.ExpiresAt) {
		return ErrResetInvalid
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	reset, err := s.users.FindReset(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrResetInvalid
	}
	if err != nil {
		return err
	}
	if reset.Used || time.Now().UTC().After(reset.ExpiresAt) {
		return ErrResetInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return err
	}
	return s.users.MarkResetUsed(ctx, reset.ID)
}
