package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	listingRepo "stayhaven/database/repository/listing"
	"stayhaven/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetByID returns the listing, flagging it authorized when the viewer hosts it.
func (s *DefaultListingService) GetByID(ctx context.Context, id string, viewer *models.User) (*models.Listing, error) {
	found, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.New("listing can't be found")
	}

	if viewer != nil && viewer.ID == found.Host {
		found.Authorized = true
	}
	return found, nil
}

// Search returns one page of listings, optionally narrowed to the geocoded
// region of a location string.
func (s *DefaultListingService) Search(ctx context.Context, location string, filter models.ListingsFilter, limit, page int) (*ListingsResult, error) {
	var query listingRepo.ListingQuery
	var region string

	if location != "" {
		geocoded, err := s.Geocoder.Geocode(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("failed to geocode location: %w", err)
		}
		if geocoded.Country == "" {
			return nil, errors.New("no country found for location")
		}

		query.City = capitalize(geocoded.City)
		query.Admin = capitalize(geocoded.Admin)
		query.Country = capitalize(geocoded.Country)

		var parts []string
		if query.City != "" {
			parts = append(parts, query.City)
		}
		if query.Admin != "" {
			parts = append(parts, query.Admin)
		}
		parts = append(parts, query.Country)
		region = strings.Join(parts, ", ")
	}

	priceSort := 0
	switch filter {
	case models.ListingsFilterPriceLowToHigh:
		priceSort = 1
	case models.ListingsFilterPriceHighToLow:
		priceSort = -1
	}

	result, total, err := s.Repo.Search(ctx, query, priceSort, limit, page)
	if err != nil {
		return nil, err
	}

	return &ListingsResult{Region: region, Total: total, Result: result}, nil
}

// Host validates the input, geocodes the address, uploads the image, and
// creates the listing under the viewer.
func (s *DefaultListingService) Host(ctx context.Context, viewer *models.User, input models.HostListingInput) (*models.Listing, error) {
	if viewer == nil {
		return nil, errors.New("viewer cannot be found")
	}
	if err := verifyHostListingInput(input); err != nil {
		return nil, err
	}

	region, err := s.Geocoder.Geocode(ctx, input.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if region.Country == "" || region.Admin == "" || region.City == "" {
		return nil, errors.New("invalid address input")
	}

	imageURL, imageID, err := s.Storage.UploadListingImage(ctx, input.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload listing image: %w", err)
	}

	newListing := &models.Listing{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Image:       imageURL,
		Host:        viewer.ID,
		Type:        input.Type,
		Address:     input.Address,
		Country:     region.Country,
		Admin:       region.Admin,
		City:        region.City,
		Bookings:    []string{},
		Index:       models.BookingsIndex{},
		Price:       input.Price,
		NumOfGuests: input.NumOfGuests,
	}

	if err := s.Repo.Create(ctx, newListing); err != nil {
		s.deleteOrphanedImage(ctx, imageID)
		return nil, err
	}

	if err := s.UserRepo.AppendListing(ctx, viewer.ID, newListing.ID); err != nil {
		// The listing exists without the host back-reference; surface it
		// rather than hide a half-linked record.
		s.Logger.Error("listing created but host back-reference failed",
			zap.String("listingId", newListing.ID),
			zap.String("hostId", viewer.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return newListing, nil
}

// deleteOrphanedImage removes an uploaded image whose listing never made it
// into the store. Best effort; a leaked asset only costs storage.
func (s *DefaultListingService) deleteOrphanedImage(ctx context.Context, imageID string) {
	if err := s.Storage.DeleteImage(ctx, imageID); err != nil {
		s.Logger.Warn("failed to delete orphaned listing image",
			zap.String("imageId", imageID),
			zap.Error(err),
		)
	}
}

// Page returns one page of the given listings.
func (s *DefaultListingService) Page(ctx context.Context, ids []string, limit, page int) ([]models.Listing, error) {
	return s.Repo.GetManyByIDs(ctx, ids, limit, page)
}

// capitalize normalizes each word to leading-uppercase, matching how regions
// are stored on listings. The first letter may be a multibyte rune, so the
// split has to happen on rune boundaries.
func capitalize(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		if first == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}
