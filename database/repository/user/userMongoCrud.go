// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateProfile refreshes the identity fields synced from the OAuth provider
// plus the session token hash.
func (r *MongoUserRepo) UpdateProfile(ctx context.Context, id, name, avatar, contact, tokenHash string) error {
	update := bson.M{"$set": bson.M{
		"name":       name,
		"avatar":     avatar,
		"contact":    contact,
		"token_hash": tokenHash,
		"updated_at": time.Now(),
	}}
	return r.updateOne(ctx, id, update)
}

// SetSessionToken replaces the stored session token hash.
func (r *MongoUserRepo) SetSessionToken(ctx context.Context, id, tokenHash string) error {
	update := bson.M{"$set": bson.M{
		"token_hash": tokenHash,
		"updated_at": time.Now(),
	}}
	return r.updateOne(ctx, id, update)
}

// SetWallet stores the connected payment account id; empty disconnects.
func (r *MongoUserRepo) SetWallet(ctx context.Context, id, walletID string) error {
	var update bson.M
	if walletID == "" {
		update = bson.M{
			"$unset": bson.M{"wallet_id": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	} else {
		update = bson.M{"$set": bson.M{
			"wallet_id":  walletID,
			"updated_at": time.Now(),
		}}
	}
	return r.updateOne(ctx, id, update)
}

// AppendListing adds a listing reference to the user's hosted listings.
func (r *MongoUserRepo) AppendListing(ctx context.Context, id, listingID string) error {
	update := bson.M{
		"$push": bson.M{"listings": listingID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.updateOne(ctx, id, update)
}

func (r *MongoUserRepo) updateOne(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}
