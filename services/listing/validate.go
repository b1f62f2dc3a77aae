package listing

import (
	"errors"

	"stayhaven/models"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 5000
)

// verifyHostListingInput applies the business limits on a new listing.
func verifyHostListingInput(input models.HostListingInput) error {
	if len(input.Title) > maxTitleLength {
		return errors.New("listing title must be under 100 characters")
	}
	if len(input.Description) > maxDescriptionLength {
		return errors.New("listing description must be under 5000 characters")
	}
	if input.Type != models.ListingTypeApartment && input.Type != models.ListingTypeHouse {
		return errors.New("listing type must be either apartment or house")
	}
	if input.Price < 0 {
		return errors.New("price must be greater than 0")
	}
	return nil
}
