package bookingRepo

import (
	"context"

	"stayhaven/models"
)

// BookingRepository defines persistence operations for bookings. Bookings are
// insert-only; the only write path is the transactional create.
type BookingRepository interface {
	// GetManyByIDs returns one page of the given bookings.
	GetManyByIDs(ctx context.Context, ids []string, limit, page int) ([]models.Booking, error)
	// CreateWithSideEffects inserts the booking and applies its denormalized
	// side effects in one transaction: the listing gains the booking reference
	// and the recomputed availability index, the host's income grows by total,
	// and the tenant gains the booking reference.
	CreateWithSideEffects(ctx context.Context, booking *models.Booking, hostID string, total int64, index models.BookingsIndex) error
}
