package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReaderRank is one row of the most-books-read ranking.
type ReaderRank struct {
	PlayerID  string `bson:"_id" json:"playerId"`
	Username  string `bson:"username" json:"username"`
	BooksRead int    `bson:"booksRead" json:"booksRead"`
}

// ReviewerRank is one row of the top-reviewers ranking.
type ReviewerRank struct {
	PlayerID string `bson:"_id" json:"playerId"`
	Username string `bson:"username" json:"username"`
	Comments int    `bson:"comments" json:"comments"`
}

// WriterRank is one row of the books-written ranking.
type WriterRank struct {
	PlayerID     string `bson:"_id" json:"playerId"`
	Username     string `bson:"username" json:"username"`
	BooksWritten int    `bson:"booksWritten" json:"booksWritten"`
}

// AuthorRank is one row of the most-popular-author ranking.
type AuthorRank struct {
	PlayerID string `bson:"_id" json:"playerId"`
	Username string `bson:"username" json:"username"`
	Upvotes  int    `bson:"upvotes" json:"upvotes"`
}

// MostBooksRead ranks players by how many distinct books they have read,
// derived from the read log. Usernames come from the xp ledger, "Unknown"
// when the player has none.
func (db *DB) MostBooksRead(ctx context.Context, limit int) ([]ReaderRank, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": bson.M{"playerId": "$playerId", "bookId": "$bookId"}}}},
		{{Key: "$group", Value: bson.M{"_id": "$_id.playerId", "booksRead": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"booksRead": -1}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "xp",
			"localField":   "_id",
			"foreignField": "playerId",
			"as":           "player",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"username": bson.M{"$ifNull": bson.A{bson.M{"$arrayElemAt": bson.A{"$player.username", 0}}, "Unknown"}},
		}}},
		{{Key: "$project", Value: bson.M{"player": 0}}},
	}
	cur, err := db.ReadLogs().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	ranks := []ReaderRank{}
	if err := cur.All(ctx, &ranks); err != nil {
		return nil, err
	}
	return ranks, nil
}

// TopReviewers ranks players by comments left, counted from the comment
// arrays embedded in book records.
func (db *DB) TopReviewers(ctx context.Context, limit int) ([]ReviewerRank, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$comments"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$comments.playerId",
			"comments": bson.M{"$sum": 1},
			"username": bson.M{"$first": "$comments.username"},
		}}},
		{{Key: "$sort", Value: bson.M{"comments": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := db.Books().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	ranks := []ReviewerRank{}
	if err := cur.All(ctx, &ranks); err != nil {
		return nil, err
	}
	return ranks, nil
}

// MostBooksWritten ranks players by book records created, drafts included.
func (db *DB) MostBooksWritten(ctx context.Context, limit int) ([]WriterRank, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$playerId",
			"booksWritten": bson.M{"$sum": 1},
			"username":     bson.M{"$first": "$author"},
		}}},
		{{Key: "$sort", Value: bson.M{"booksWritten": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := db.Books().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	ranks := []WriterRank{}
	if err := cur.All(ctx, &ranks); err != nil {
		return nil, err
	}
	return ranks, nil
}

// MostPopularAuthors ranks players by total upvotes across their published
// books only.
func (db *DB) MostPopularAuthors(ctx context.Context, limit int) ([]AuthorRank, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"published": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$playerId",
			"upvotes":  bson.M{"$sum": "$upvotes"},
			"username": bson.M{"$first": "$author"},
		}}},
		{{Key: "$sort", Value: bson.M{"upvotes": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := db.Books().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	ranks := []AuthorRank{}
	if err := cur.All(ctx, &ranks); err != nil {
		return nil, err
	}
	return ranks, nil
}
