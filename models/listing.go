package models

import "time"

// ListingType enumerates the kinds of rentals hosts can offer.
type ListingType string

const (
	ListingTypeApartment ListingType = "APARTMENT"
	ListingTypeHouse     ListingType = "HOUSE"
)

// BookingsIndex is the denormalized availability index of a listing: UTC year
// -> zero-based month -> day of month -> booked. Keys are decimal strings so
// the structure round-trips through BSON and JSON unchanged.
type BookingsIndex map[string]map[string]map[string]bool

// Listing represents a rental unit offered by a host.
type Listing struct {
	ID          string        `bson:"id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Image       string        `bson:"image" json:"image"` // Cloudinary URL
	Host        string        `bson:"host" json:"host"`   // User.ID of the host
	Type        ListingType   `bson:"type" json:"type"`
	Address     string        `bson:"address" json:"address"`
	Country     string        `bson:"country" json:"country"`
	Admin       string        `bson:"admin" json:"admin"`
	City        string        `bson:"city" json:"city"`
	Bookings    []string      `bson:"bookings" json:"bookings"` // Booking.IDs in creation order
	Index       BookingsIndex `bson:"bookingsIndex" json:"bookingsIndex"`
	Price       int64         `bson:"price" json:"price"` // nightly price, smallest currency unit
	NumOfGuests int           `bson:"numOfGuests" json:"numOfGuests"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`

	// Authorized is set at query time when the viewer is the host; it gates
	// access to the listing's bookings. Never persisted.
	Authorized bool `bson:"-" json:"-"`
}

// HostListingInput is the payload of the hostListing mutation.
type HostListingInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        ListingType `json:"type"`
	Image       string      `json:"image"` // base64 data URI, uploaded on create
	Address     string      `json:"address"`
	Price       int64       `json:"price"`
	NumOfGuests int         `json:"numOfGuests"`
}

// ListingsFilter selects the sort order of the listings query.
type ListingsFilter string

const (
	ListingsFilterPriceLowToHigh ListingsFilter = "PRICE_LOW_TO_HIGH"
	ListingsFilterPriceHighToLow ListingsFilter = "PRICE_HIGH_TO_LOW"
)
