package user

import (
	"context"

	userRepo "stayhaven/database/repository/user"
	"stayhaven/models"

	"go.uber.org/zap"
)

// UserService defines user profile reads.
type UserService interface {
	// GetByID returns the user with its Authorized flag set when the viewer
	// is the user itself. Returns an error when the user is absent.
	GetByID(ctx context.Context, id string, viewer *models.User) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}
