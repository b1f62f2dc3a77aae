package booking

import (
	"context"
	"time"

	"stayhaven/models"
	"stayhaven/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultMaxAdvanceDays bounds how far ahead a stay may start or end.
const defaultMaxAdvanceDays = 90

// CreateBooking runs the booking workflow. All validation happens before the
// payment capture, and the capture happens before any persistence: a failure
// up to and including the charge leaves no trace. A persistence failure after
// a captured charge is the one state needing manual follow-up; it is logged
// and handed to the reconciler.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, viewer *models.User, input models.CreateBookingInput) (*models.Booking, error) {
	if viewer == nil {
		return nil, newError(CodeUnauthenticated, "viewer cannot be found")
	}

	// Serialize per listing so concurrent bookings cannot both read the same
	// index and overwrite each other's days.
	unlock := lockListing(input.ID)
	defer unlock()

	listing, err := s.ListingRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, wrapError(CodePersistenceFailure, "failed to load listing", err)
	}
	if listing == nil {
		return nil, newError(CodeNotFound, "listing can't be found")
	}

	if listing.Host == viewer.ID {
		return nil, newError(CodeInvalidOperation, "viewer can't book own listing")
	}

	checkIn, checkOut, err := s.validateDates(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	index := ExtendBookingsIndex(listing.Index, checkIn, checkOut)
	total := TotalPrice(listing.Price, checkIn, checkOut)

	host, err := s.UserRepo.GetByID(ctx, listing.Host)
	if err != nil {
		return nil, wrapError(CodePersistenceFailure, "failed to load host", err)
	}
	if host == nil {
		return nil, newError(CodeNotFound, "the host can't be found")
	}
	if !host.HasWallet() {
		return nil, newError(CodePaymentSetupRequired, "the host either can't be found or is not connected with Stripe")
	}

	if err := s.Payments.Charge(ctx, total, input.Source, host.WalletID); err != nil {
		return nil, wrapError(CodePaymentFailed, "failed to create charge", err)
	}

	newBooking := &models.Booking{
		ID:       uuid.New().String(),
		Listing:  listing.ID,
		Tenant:   viewer.ID,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
	}

	if err := s.BookingRepo.CreateWithSideEffects(ctx, newBooking, host.ID, total, index); err != nil {
		s.Logger.Error("payment captured but booking not persisted; manual reconciliation required",
			zap.String("bookingId", newBooking.ID),
			zap.String("listingId", listing.ID),
			zap.String("tenantId", viewer.ID),
			zap.Int64("amount", total),
			zap.Error(err),
		)
		if s.Reconciler != nil {
			if enqErr := s.Reconciler.EnqueuePaymentReconcile(ctx, tasks.PaymentReconcilePayload{
				BookingID:  newBooking.ID,
				ListingID:  listing.ID,
				TenantID:   viewer.ID,
				HostWallet: host.WalletID,
				Amount:     total,
				Cause:      err.Error(),
			}); enqErr != nil {
				s.Logger.Error("failed to enqueue payment reconciliation", zap.Error(enqErr))
			}
		}
		return nil, wrapError(CodePersistenceFailure, "failed to persist booking", err)
	}

	return newBooking, nil
}

// Page returns one page of the given bookings.
func (s *DefaultBookingService) Page(ctx context.Context, ids []string, limit, page int) ([]models.Booking, error) {
	return s.BookingRepo.GetManyByIDs(ctx, ids, limit, page)
}

// validateDates parses and bounds the requested stay. Dates are date-only
// strings interpreted at UTC midnight. checkOut must not precede checkIn, and
// neither date may lie beyond the advance-booking horizon (today plus N days).
func (s *DefaultBookingService) validateDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.ParseInLocation(DayFormat, checkInStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, wrapError(CodeInvalidInput, "invalid check in date", err)
	}
	checkOut, err := time.ParseInLocation(DayFormat, checkOutStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, wrapError(CodeInvalidInput, "invalid check out date", err)
	}

	if checkOut.Before(checkIn) {
		return time.Time{}, time.Time{}, newError(CodeInvalidInput, "check out date can't be before check in date")
	}

	maxDays := s.MaxAdvanceDays
	if maxDays <= 0 {
		maxDays = defaultMaxAdvanceDays
	}
	horizon := midnightUTC(time.Now()).AddDate(0, 0, maxDays)
	if checkIn.After(horizon) || checkOut.After(horizon) {
		return time.Time{}, time.Time{}, newError(CodeInvalidInput, "stay can't start or end beyond the advance booking horizon")
	}

	return checkIn, checkOut, nil
}
