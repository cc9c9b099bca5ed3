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

// SetBookmark saves a player's reading position in a book, one bookmark per
// (player, book), last-write-wins.
func (db *DB) SetBookmark(ctx context.Context, playerID, bookID string, page int) error {
	update := bson.M{
		"$set":         bson.M{"page": page},
		"$setOnInsert": bson.M{"createdAt": time.Now().UTC()},
	}
	_, err := db.Bookmarks().UpdateOne(ctx,
		bson.M{"playerId": playerID, "bookId": bookID}, update, options.Update().SetUpsert(true))
	return err
}

func (db *DB) BookmarkByPlayer(ctx context.Context, playerID, bookID string) (*models.Bookmark, error) {
	var bm models.Bookmark
	err := db.Bookmarks().FindOne(ctx, bson.M{"playerId": playerID, "bookId": bookID}).Decode(&bm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bm, nil
}
