package store

import (
	"context"
	"errors"
	"time"

	"github.com/inkbound/storyshelf/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AwardXP increments a player's XP and refreshes the username, creating the
// ledger entry on first award. Returns the new total.
func (db *DB) AwardXP(ctx context.Context, playerID, username string, amount int) (int, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$inc":         bson.M{"xp": amount},
		"$set":         bson.M{"username": username, "updatedAt": now},
		"$setOnInsert": bson.M{"playerId": playerID, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var entry models.XP
	if err := db.XP().FindOneAndUpdate(ctx, bson.M{"playerId": playerID}, update, opts).Decode(&entry); err != nil {
		return 0, err
	}
	return entry.XP, nil
}

func (db *DB) XPByPlayer(ctx context.Context, playerID string) (*models.XP, error) {
	var entry models.XP
	err := db.XP().FindOne(ctx, bson.M{"playerId": playerID}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// TopXP returns the highest-XP players, served straight off the xp desc index.
func (db *DB) TopXP(ctx context.Context, limit int) ([]models.XP, error) {
	cur, err := db.XP().Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"xp": -1}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	entries := []models.XP{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
