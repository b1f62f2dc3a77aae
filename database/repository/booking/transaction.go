package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithSideEffects inserts the booking and applies all denormalized side
// effects in one mongo transaction. Either every record reflects the booking
// or none does; a partially applied booking after a captured payment would
// need manual reconciliation.
func (r *MongoBookingRepo) CreateWithSideEffects(
	ctx context.Context,
	booking *models.Booking,
	hostID string,
	total int64,
	index models.BookingsIndex,
) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		listingUpdate := bson.M{
			"$push": bson.M{"bookings": booking.ID},
			"$set": bson.M{
				"bookingsIndex": index,
				"updated_at":    now,
			},
		}
		res, err := r.listingColl.UpdateOne(sc, bson.M{"id": booking.Listing}, listingUpdate)
		if err != nil {
			return fmt.Errorf("update listing failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("listing with id %s not found", booking.Listing)
		}

		hostUpdate := bson.M{
			"$inc": bson.M{"income": total},
			"$set": bson.M{"updated_at": now},
		}
		res, err = r.userColl.UpdateOne(sc, bson.M{"id": hostID}, hostUpdate)
		if err != nil {
			return fmt.Errorf("credit host income failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("host with id %s not found", hostID)
		}

		tenantUpdate := bson.M{
			"$push": bson.M{"bookings": booking.ID},
			"$set":  bson.M{"updated_at": now},
		}
		res, err = r.userColl.UpdateOne(sc, bson.M{"id": booking.Tenant}, tenantUpdate)
		if err != nil {
			return fmt.Errorf("update tenant failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("tenant with id %s not found", booking.Tenant)
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
