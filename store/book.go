package store

import (
	"context"
	"errors"
	"sort"

	"github.com/inkbound/storyshelf/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *DB) BookByID(ctx context.Context, bookID string) (*models.Book, error) {
	var book models.Book
	err := db.Books().FindOne(ctx, bson.M{"bookId": bookID}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// PublishedBooks returns one page of the public shelf, newest first, plus the
// total published count.
func (db *DB) PublishedBooks(ctx context.Context, page, limit int) ([]models.Book, int64, error) {
	filter := bson.M{"published": true}
	total, err := db.Books().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := db.Books().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	books := []models.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// BooksByPlayer returns a player's books in the given lifecycle status,
// newest first.
func (db *DB) BooksByPlayer(ctx context.Context, playerID, status string) ([]models.Book, error) {
	cur, err := db.Books().Find(ctx,
		bson.M{"playerId": playerID, "status": status},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	books := []models.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// UpsertDraft creates or updates a book record as a draft. Engagement
// counters (views, upvotes, voters, comments, reports) are only set on
// insert, so editing content never resets them. The filter includes playerId:
// a save against someone else's bookId becomes an insert attempt that trips
// the unique bookId index, surfaced as ErrDuplicate.
func (db *DB) UpsertDraft(ctx context.Context, book *models.Book) (*models.Book, error) {
	filter := bson.M{"bookId": book.BookID, "playerId": book.PlayerID}
	update := bson.M{
		"$set": bson.M{
			"title":     book.Title,
			"author":    book.Author,
			"coverId":   book.CoverID,
			"genres":    book.Genres,
			"status":    models.StatusDraft,
			"published": false,
			"pageCount": book.PageCount,
			"updatedAt": book.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"bookId":      book.BookID,
			"playerId":    book.PlayerID,
			"glowingBook": false,
			"customCover": false,
			"views":       0,
			"upvotes":     0,
			"voters":      []string{},
			"comments":    []models.Comment{},
			"reports":     []models.Report{},
			"createdAt":   book.CreatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var saved models.Book
	err := db.Books().FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// PublishBook flips a draft to published and persists the add-on flags. The
// conditional filter makes "no such book", "not the owner" and "already
// published" indistinguishable, all ErrNotFound.
func (db *DB) PublishBook(ctx context.Context, bookID, playerID string, glowingBook, customCover bool, updatedAt string) (*models.Book, error) {
	filter := bson.M{
		"bookId":    bookID,
		"playerId":  playerID,
		"status":    models.StatusDraft,
		"published": false,
	}
	update := bson.M{"$set": bson.M{
		"status":      models.StatusPublished,
		"published":   true,
		"glowingBook": glowingBook,
		"customCover": customCover,
		"updatedAt":   updatedAt,
	}}
	var book models.Book
	err := db.Books().FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (db *DB) DeleteBook(ctx context.Context, bookID string) (*models.Book, error) {
	var book models.Book
	err := db.Books().FindOneAndDelete(ctx, bson.M{"bookId": bookID}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (db *DB) HasVoted(ctx context.Context, bookID, playerID string) (bool, error) {
	n, err := db.Books().CountDocuments(ctx, bson.M{"bookId": bookID, "voters": playerID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CastVote appends playerId to the voter set and bumps upvotes in one
// document update, so a concurrent double-submit cannot double-count.
// Returns the resulting upvote count and whether the vote was a repeat.
func (db *DB) CastVote(ctx context.Context, bookID, playerID string) (upvotes int, already bool, err error) {
	filter := bson.M{"bookId": bookID, "voters": bson.M{"$ne": playerID}}
	update := bson.M{
		"$addToSet": bson.M{"voters": playerID},
		"$inc":      bson.M{"upvotes": 1},
	}
	var book models.Book
	err = db.Books().FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&book)
	if err == nil {
		return book.Upvotes, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, err
	}
	// No match: either the book is missing or the player already voted.
	existing, err := db.BookByID(ctx, bookID)
	if err != nil {
		return 0, false, err
	}
	return existing.Upvotes, true, nil
}

// AddComment appends a comment unless the player already has one on this
// book. The guarded push keeps the one-comment-per-player invariant atomic.
func (db *DB) AddComment(ctx context.Context, bookID string, comment models.Comment) ([]models.Comment, error) {
	filter := bson.M{"bookId": bookID, "comments.playerId": bson.M{"$ne": comment.PlayerID}}
	update := bson.M{"$push": bson.M{"comments": comment}}
	var book models.Book
	err := db.Books().FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&book)
	if err == nil {
		return sortComments(book.Comments), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if _, err := db.BookByID(ctx, bookID); err != nil {
		return nil, err
	}
	return nil, ErrDuplicate
}

// CommentsByBook returns a book's comments ranked by like count, newest
// first among ties.
func (db *DB) CommentsByBook(ctx context.Context, bookID string) ([]models.Comment, error) {
	book, err := db.BookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return sortComments(book.Comments), nil
}

// IncrementViews bumps the view counter and returns the new count. Callers
// must have passed the per-day dedup check first.
func (db *DB) IncrementViews(ctx context.Context, bookID string) (int, error) {
	var book models.Book
	err := db.Books().FindOneAndUpdate(ctx,
		bson.M{"bookId": bookID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return book.Views, nil
}

func sortComments(comments []models.Comment) []models.Comment {
	sort.SliceStable(comments, func(i, j int) bool {
		if len(comments[i].Likes) != len(comments[j].Likes) {
			return len(comments[i].Likes) > len(comments[j].Likes)
		}
		return comments[i].CreatedAt > comments[j].CreatedAt
	})
	return comments
}
