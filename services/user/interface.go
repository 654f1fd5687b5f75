package user

import (
	"context"
	"errors"
	"time"

	userRepo "smartmeet/database/repository/user"
	"smartmeet/models"

	"go.uber.org/zap"
)

const tokenTTL = 7 * 24 * time.Hour

var (
	ErrInvalidSignup      = errors.New("invalid signup request")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = userRepo.ErrUserNotFound
)

type UserService interface {
	Signup(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	logger *zap.Logger
}

func NewDefaultUserService(repo userRepo.UserRepository, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Repo: repo, logger: logger}
}
