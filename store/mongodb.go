package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sentinel errors handlers translate into HTTP status codes.
var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate")
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (db *DB) Books() *mongo.Collection {
	return db.Database.Collection("books")
}

func (db *DB) Contents() *mongo.Collection {
	return db.Database.Collection("book_contents")
}

func (db *DB) Views() *mongo.Collection {
	return db.Database.Collection("views")
}

func (db *DB) ReadLogs() *mongo.Collection {
	return db.Database.Collection("read_logs")
}

func (db *DB) XP() *mongo.Collection {
	return db.Database.Collection("xp")
}

func (db *DB) Playtime() *mongo.Collection {
	return db.Database.Collection("playtime")
}

func (db *DB) Bookmarks() *mongo.Collection {
	return db.Database.Collection("bookmarks")
}

func (db *DB) Reports() *mongo.Collection {
	return db.Database.Collection("reports")
}

// EnsureIndexes creates the unique indexes the dedup and ledger invariants
// rely on. Safe to call on every startup.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	dedupKey := bson.D{{Key: "playerId", Value: 1}, {Key: "bookId", Value: 1}, {Key: "date", Value: 1}}

	if _, err := db.Books().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "bookId", Value: 1}}, Options: unique,
	}); err != nil {
		return err
	}
	if _, err := db.Contents().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "bookId", Value: 1}, {Key: "pageNumber", Value: 1}}, Options: unique,
	}); err != nil {
		return err
	}
	if _, err := db.Views().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: dedupKey, Options: unique,
	}); err != nil {
		return err
	}
	if _, err := db.ReadLogs().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: dedupKey, Options: unique,
	}); err != nil {
		return err
	}
	if _, err := db.XP().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "playerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "xp", Value: -1}}},
	}); err != nil {
		return err
	}
	if _, err := db.Playtime().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "playerId", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	if _, err := db.Bookmarks().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "playerId", Value: 1}, {Key: "bookId", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	return nil
}

func (db *DB) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
