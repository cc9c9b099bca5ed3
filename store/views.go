package store

import (
	"context"

	"github.com/inkbound/storyshelf/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordView inserts the (player, book, day) dedup record. A repeat on the
// same day hits the unique index and reports duplicate=true; the caller
// skips the counter bump in that case.
func (db *DB) RecordView(ctx context.Context, playerID, bookID, date string) (duplicate bool, err error) {
	_, err = db.Views().InsertOne(ctx, models.View{
		PlayerID: playerID,
		BookID:   bookID,
		Date:     date,
	})
	if mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
