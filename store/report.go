package store

import (
	"context"

	"github.com/inkbound/storyshelf/models"
	"go.mongodb.org/mongo-driver/bson"
)

// AppendReport writes the report to the audit collection and onto the book's
// embedded reports array. Append-only; there is no read or resolve path.
func (db *DB) AppendReport(ctx context.Context, report models.Report) error {
	res, err := db.Books().UpdateOne(ctx,
		bson.M{"bookId": report.BookID},
		bson.M{"$push": bson.M{"reports": report}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	_, err = db.Reports().InsertOne(ctx, report)
	return err
}
