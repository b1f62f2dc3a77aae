package models

import "time"

// Booking represents a confirmed stay. Bookings are insert-only; there is no
// cancellation path, so a created booking never changes.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	Listing   string    `bson:"listing" json:"listing"` // Listing.ID
	Tenant    string    `bson:"tenant" json:"tenant"`   // User.ID of the booker
	CheckIn   string    `bson:"checkIn" json:"checkIn"`   // "2006-01-02", inclusive
	CheckOut  string    `bson:"checkOut" json:"checkOut"` // "2006-01-02", inclusive
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CreateBookingInput is the payload of the createBooking mutation.
type CreateBookingInput struct {
	ID       string `json:"id"`     // listing id
	Source   string `json:"source"` // payment-source token from the client
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}
