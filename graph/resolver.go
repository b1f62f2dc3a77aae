package graph

import (
	"errors"

	"stayhaven/middleware"
	"stayhaven/models"
	"stayhaven/services/booking"
	"stayhaven/services/listing"
	"stayhaven/services/user"
	"stayhaven/services/viewer"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// Resolver bundles the services the schema resolves against.
type Resolver struct {
	Viewers  viewer.ViewerService
	Users    user.UserService
	Listings listing.ListingService
	Bookings booking.BookingService
	Logger   *zap.Logger
}

// errMissingAuth is returned when a resolver runs outside the viewer
// middleware, which only happens on wiring mistakes.
var errMissingAuth = errors.New("request auth not found in context")

func requestAuth(p graphql.ResolveParams) (*middleware.RequestAuth, error) {
	auth, ok := middleware.RequestAuthFrom(p.Context)
	if !ok {
		return nil, errMissingAuth
	}
	return auth, nil
}

// Sources arrive both as values (from paged slices) and as pointers (from
// single-record reads), so field resolvers coerce through these helpers.

func listingSource(src interface{}) *models.Listing {
	switch v := src.(type) {
	case *models.Listing:
		return v
	case models.Listing:
		return &v
	}
	return nil
}

func userSource(src interface{}) *models.User {
	switch v := src.(type) {
	case *models.User:
		return v
	case models.User:
		return &v
	}
	return nil
}

func bookingSource(src interface{}) *models.Booking {
	switch v := src.(type) {
	case *models.Booking:
		return v
	case models.Booking:
		return &v
	}
	return nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

func intArg(p graphql.ResolveParams, name string) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return 0
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	if v, ok := p.Args["input"].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func inputString(input map[string]interface{}, name string) string {
	if v, ok := input[name].(string); ok {
		return v
	}
	return ""
}

func intInput(input map[string]interface{}, name string) int {
	if v, ok := input[name].(int); ok {
		return v
	}
	return 0
}

// toViewer shapes a user record into the viewer payload the client stores.
func toViewer(u *models.User, token string) models.Viewer {
	v := models.Viewer{DidRequest: true}
	if u != nil {
		v.ID = u.ID
		v.Token = token
		v.Avatar = u.Avatar
		v.WalletID = u.WalletID
	}
	return v
}

// bookingsPage is one page of a bookings list field.
type bookingsPage struct {
	Total  int
	Result []models.Booking
}

// listingsPage is one page of a listings list field.
type listingsPage struct {
	Region string
	Total  int64
	Result []models.Listing
}
