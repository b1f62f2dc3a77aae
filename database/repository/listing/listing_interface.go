package listingRepo

import (
	"context"

	"stayhaven/models"
)

// ListingQuery narrows a listings search to a geocoded region. Empty fields
// are not applied.
type ListingQuery struct {
	City    string
	Admin   string
	Country string
}

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	// GetByID returns the listing or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	// Search returns one page of listings matching the query plus the total
	// match count. priceSort is 1 (ascending), -1 (descending) or 0 (no sort).
	Search(ctx context.Context, query ListingQuery, priceSort int, limit, page int) ([]models.Listing, int64, error)
	// GetManyByIDs returns one page of the given listings, preserving the
	// store's natural order.
	GetManyByIDs(ctx context.Context, ids []string, limit, page int) ([]models.Listing, error)
}
