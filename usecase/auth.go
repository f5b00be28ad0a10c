package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/apperror"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/services"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

// UserRepository is the slice of the user store the auth service needs.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
}

type AuthService struct {
	Users  UserRepository
	Tokens *services.TokenManager
}

// Register creates an account and signs its first token. Email uniqueness is
// checked here and enforced again by the store's unique index.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*model.User, string, error) {
	if email == "" {
		return nil, "", fmt.Errorf("Email is required: %w", apperror.ErrValidation)
	}
	if password == "" {
		return nil, "", fmt.Errorf("Password is required: %w", apperror.ErrValidation)
	}
	if fullName == "" {
		return nil, "", fmt.Errorf("Full Name is required: %w", apperror.ErrValidation)
	}

	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, "", fmt.Errorf("User already exists: %w", apperror.ErrConflict)
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if err := s.Users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.Tokens.Generate(user.UserID)
	if err != nil {
		return nil, "", err
	}

	utils.TrackAuthAttempt("success", "register")
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" {
		return nil, "", fmt.Errorf("Email is required: %w", apperror.ErrValidation)
	}
	if password == "" {
		return nil, "", fmt.Errorf("Password is required: %w", apperror.ErrValidation)
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, "", fmt.Errorf("User not found: %w", apperror.ErrNotFound)
	}

	if !services.VerifyPassword(user.Password, password) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, "", fmt.Errorf("Invalid Credentials: %w", apperror.ErrAuthentication)
	}

	token, err := s.Tokens.Generate(user.UserID)
	if err != nil {
		return nil, "", err
	}

	utils.TrackAuthAttempt("success", "login")
	return user, token, nil
}

// GetProfile returns the account behind a verified token identity.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("User not found: %w", apperror.ErrNotFound)
	}
	return user, nil
}
