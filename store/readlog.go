package store

import (
	"context"

	"github.com/inkbound/storyshelf/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordRead inserts the once-per-day read record gating the XP award.
// Same shape as RecordView; duplicate=true means no award.
func (db *DB) RecordRead(ctx context.Context, playerID, bookID, date string) (duplicate bool, err error) {
	_, err = db.ReadLogs().InsertOne(ctx, models.ReadLog{
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
