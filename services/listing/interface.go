package listing

import (
	"context"

	listingRepo "stayhaven/database/repository/listing"
	userRepo "stayhaven/database/repository/user"
	"stayhaven/models"
	"stayhaven/services/geo"
	"stayhaven/services/storage"

	"go.uber.org/zap"
)

// ListingsResult is one page of a listings search.
type ListingsResult struct {
	Region string
	Total  int64
	Result []models.Listing
}

// ListingService defines listing reads, search and hosting.
type ListingService interface {
	// GetByID returns the listing, with its Authorized flag set when the
	// viewer is the host. Returns an error when the listing is absent.
	GetByID(ctx context.Context, id string, viewer *models.User) (*models.Listing, error)
	// Search returns one page of listings; a non-empty location is geocoded
	// and narrows the results to its region.
	Search(ctx context.Context, location string, filter models.ListingsFilter, limit, page int) (*ListingsResult, error)
	// Host validates the input, uploads the image, and creates the listing
	// under the viewer.
	Host(ctx context.Context, viewer *models.User, input models.HostListingInput) (*models.Listing, error)
	// Page returns one page of the given listings.
	Page(ctx context.Context, ids []string, limit, page int) ([]models.Listing, error)
}

// DefaultListingService implements ListingService.
type DefaultListingService struct {
	Repo     listingRepo.ListingRepository
	UserRepo userRepo.UserRepository
	Geocoder geo.Geocoder
	Storage  storage.StorageService
	Logger   *zap.Logger
}
