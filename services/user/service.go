package user

import (
	"context"
	"errors"

	"stayhaven/models"
)

// GetByID returns the user, flagging it authorized when the viewer is looking
// at their own profile. Authorized gates income, bookings and wallet status.
func (s *DefaultUserService) GetByID(ctx context.Context, id string, viewer *models.User) (*models.User, error) {
	found, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.New("user can't be found")
	}

	if viewer != nil && viewer.ID == found.ID {
		found.Authorized = true
	}
	return found, nil
}
