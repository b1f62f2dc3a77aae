package models

import "time"

// User represents a platform user. Users are role-agnostic: the same account
// hosts listings and books stays.
type User struct {
	ID        string    `bson:"id" json:"id"` // Google account id
	Name      string    `bson:"name" json:"name"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	Contact   string    `bson:"contact" json:"contact"` // email
	TokenHash string    `bson:"token_hash" json:"-"`    // hash of the active session token
	WalletID  string    `bson:"wallet_id,omitempty" json:"-"` // Stripe connected account
	Income    int64     `bson:"income" json:"income"`   // lifetime host earnings, smallest currency unit
	Bookings  []string  `bson:"bookings" json:"bookings"` // Booking.IDs as tenant
	Listings  []string  `bson:"listings" json:"listings"` // Listing.IDs as host
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	// Authorized is set at query time when the viewer is this user; it gates
	// income and booking visibility. Never persisted.
	Authorized bool `bson:"-" json:"-"`
}

// HasWallet reports whether the user completed Stripe payment onboarding.
func (u *User) HasWallet() bool {
	return u.WalletID != ""
}
