package store

import (
	"context"
	"strings"

	"github.com/inkbound/storyshelf/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReplacePages swaps out a book's pages wholesale: delete everything under
// the bookId, then insert the new pages in order. Pages whose trimmed text is
// empty are stored as a placeholder so the page count matches the input.
//
// The two steps are not transactional. A reader fetching between delete and
// insert can observe zero or partial pages, and a failed insert leaves the
// old pages gone. Known gap, accepted for this workload.
func (db *DB) ReplacePages(ctx context.Context, bookID string, pages []string) (int, error) {
	if _, err := db.Contents().DeleteMany(ctx, bson.M{"bookId": bookID}); err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(pages))
	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			text = models.EmptyPagePlaceholder
		}
		docs = append(docs, models.ContentPage{
			BookID:     bookID,
			PageNumber: i + 1,
			Text:       text,
		})
	}
	if len(docs) == 0 {
		return 0, nil
	}
	if _, err := db.Contents().InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// PagesByBook returns a book's page texts ordered by page number. A book
// with no stored pages reads as a single placeholder page.
func (db *DB) PagesByBook(ctx context.Context, bookID string) ([]string, error) {
	cur, err := db.Contents().Find(ctx,
		bson.M{"bookId": bookID},
		options.Find().SetSort(bson.M{"pageNumber": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var pages []models.ContentPage
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return []string{models.EmptyPagePlaceholder}, nil
	}
	texts := make([]string, len(pages))
	for i, p := range pages {
		texts[i] = p.Text
	}
	return texts, nil
}

func (db *DB) DeletePages(ctx context.Context, bookID string) error {
	_, err := db.Contents().DeleteMany(ctx, bson.M{"bookId": bookID})
	return err
}
