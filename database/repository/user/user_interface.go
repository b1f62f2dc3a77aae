package userRepo

import (
	"context"

	"stayhaven/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// GetByID returns the user or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// UpdateProfile refreshes the identity fields synced from the OAuth
	// provider plus the session token hash.
	UpdateProfile(ctx context.Context, id, name, avatar, contact, tokenHash string) error
	// SetSessionToken replaces the stored session token hash.
	SetSessionToken(ctx context.Context, id, tokenHash string) error
	// SetWallet stores the connected payment account id; an empty walletID
	// disconnects the wallet.
	SetWallet(ctx context.Context, id, walletID string) error
	// AppendListing adds a listing reference to the user's hosted listings.
	AppendListing(ctx context.Context, id, listingID string) error
}
