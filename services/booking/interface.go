package booking

import (
	"context"

	bookingRepo "stayhaven/database/repository/booking"
	listingRepo "stayhaven/database/repository/listing"
	userRepo "stayhaven/database/repository/user"
	"stayhaven/models"
	"stayhaven/services/payment"
	"stayhaven/tasks"

	"go.uber.org/zap"
)

// BookingService defines the booking workflow and booking reads.
type BookingService interface {
	// CreateBooking runs the full booking workflow for the authenticated
	// viewer: validation, pricing, payment capture and persistence.
	CreateBooking(ctx context.Context, viewer *models.User, input models.CreateBookingInput) (*models.Booking, error)
	// Page returns one page of the given bookings.
	Page(ctx context.Context, ids []string, limit, page int) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	ListingRepo listingRepo.ListingRepository
	UserRepo    userRepo.UserRepository
	BookingRepo bookingRepo.BookingRepository
	Payments    payment.Gateway
	Reconciler  tasks.Reconciler
	// Bookings may start at most this many days ahead; zero means the
	// default horizon.
	MaxAdvanceDays int
	Logger         *zap.Logger
}
