package store

import (
	"context"

	"github.com/inkbound/storyshelf/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetPlaytime upserts a player's playtime entry, last-write-wins on every field.
func (db *DB) SetPlaytime(ctx context.Context, entry models.Playtime) error {
	update := bson.M{"$set": bson.M{
		"username":  entry.Username,
		"thumbnail": entry.Thumbnail,
		"minutes":   entry.Minutes,
	}}
	_, err := db.Playtime().UpdateOne(ctx,
		bson.M{"playerId": entry.PlayerID}, update, options.Update().SetUpsert(true))
	return err
}

func (db *DB) TopPlaytime(ctx context.Context, limit int) ([]models.Playtime, error) {
	cur, err := db.Playtime().Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"minutes": -1}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	entries := []models.Playtime{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
