//go:build integration

package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/inkbound/storyshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB connects to the MongoDB named by MONGODB_URI and hands back a store
// on a throwaway database. Skipped when no URI is set.
func testDB(t *testing.T) *DB {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := NewMongoDB(ctx, uri, fmt.Sprintf("storyshelf_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	require.NoError(t, db.EnsureIndexes(ctx))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Database.Drop(ctx)
		_ = db.Disconnect(ctx)
	})
	return db
}

func saveTestBook(t *testing.T, db *DB, bookID, playerID string, pages []string) *models.Book {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339)
	book, err := db.UpsertDraft(ctx, &models.Book{
		BookID:    bookID,
		PlayerID:  playerID,
		Title:     "A Test Book",
		Author:    "Anonymous",
		Genres:    []string{},
		PageCount: len(pages),
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = db.ReplacePages(ctx, bookID, pages)
	require.NoError(t, err)
	return book
}

func TestContentRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	book := saveTestBook(t, db, "rt-1", "p1", []string{"Page 1", "Page 2"})
	assert.Equal(t, 2, book.PageCount)
	assert.Equal(t, models.StatusDraft, book.Status)
	assert.False(t, book.Published)

	pages, err := db.PagesByBook(ctx, "rt-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Page 1", "Page 2"}, pages)
}

func TestReplacePages_EmptyPageGetsPlaceholder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	n, err := db.ReplacePages(ctx, "ph-1", []string{"one", "   ", "three"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	pages, err := db.PagesByBook(ctx, "ph-1")
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, models.EmptyPagePlaceholder, pages[1])
}

func TestPagesByBook_NoPagesYieldsPlaceholder(t *testing.T) {
	db := testDB(t)
	pages, err := db.PagesByBook(context.Background(), "nothing-here")
	require.NoError(t, err)
	assert.Equal(t, []string{models.EmptyPagePlaceholder}, pages)
}

func TestUpsertDraft_PreservesEngagement(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	saveTestBook(t, db, "eng-1", "p1", []string{"v1"})
	for _, voter := range []string{"a", "b", "c"} {
		_, _, err := db.CastVote(ctx, "eng-1", voter)
		require.NoError(t, err)
	}

	book := saveTestBook(t, db, "eng-1", "p1", []string{"v2 page 1", "v2 page 2"})
	assert.Equal(t, 3, book.Upvotes)
	assert.Len(t, book.Voters, 3)
	assert.Equal(t, 2, book.PageCount)
	assert.Equal(t, models.StatusDraft, book.Status)
}

func TestUpsertDraft_RejectsForeignBookID(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	saveTestBook(t, db, "owned-1", "p1", []string{"page"})
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.UpsertDraft(ctx, &models.Book{
		BookID: "owned-1", PlayerID: "p2", Title: "Hijack",
		Genres: []string{}, PageCount: 1, CreatedAt: now, UpdatedAt: now,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPublish_Preconditions(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339)

	saveTestBook(t, db, "pub-1", "p1", []string{"page"})

	_, err := db.PublishBook(ctx, "pub-1", "wrong-player", false, false, now)
	assert.ErrorIs(t, err, ErrNotFound)

	book, err := db.PublishBook(ctx, "pub-1", "p1", true, false, now)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, book.Status)
	assert.True(t, book.Published)
	assert.True(t, book.GlowingBook)

	// Publishing twice fails the same way as a missing book.
	_, err = db.PublishBook(ctx, "pub-1", "p1", false, false, now)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCastVote_Idempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	saveTestBook(t, db, "vote-1", "p1", []string{"page"})

	upvotes, already, err := db.CastVote(ctx, "vote-1", "voter")
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, 1, upvotes)

	upvotes, already, err = db.CastVote(ctx, "vote-1", "voter")
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, 1, upvotes)

	voted, err := db.HasVoted(ctx, "vote-1", "voter")
	require.NoError(t, err)
	assert.True(t, voted)
}

func TestCastVote_MissingBook(t *testing.T) {
	db := testDB(t)
	_, _, err := db.CastVote(context.Background(), "no-such-book", "voter")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment_OnePerPlayer(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	saveTestBook(t, db, "cmt-1", "p1", []string{"page"})

	comment := models.Comment{
		PlayerID: "reader", Username: "Reader", Text: "nice",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Likes:     []string{"reader"}, Dislikes: []string{},
	}
	comments, err := db.AddComment(ctx, "cmt-1", comment)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, []string{"reader"}, comments[0].Likes)

	_, err = db.AddComment(ctx, "cmt-1", comment)
	assert.ErrorIs(t, err, ErrDuplicate)

	comments, err = db.CommentsByBook(ctx, "cmt-1")
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	_, err = db.AddComment(ctx, "absent", comment)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordView_DedupPerDay(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	saveTestBook(t, db, "view-1", "p1", []string{"page"})

	dup, err := db.RecordView(ctx, "reader", "view-1", "2024-07-13")
	require.NoError(t, err)
	assert.False(t, dup)
	views, err := db.IncrementViews(ctx, "view-1")
	require.NoError(t, err)
	assert.Equal(t, 1, views)

	dup, err = db.RecordView(ctx, "reader", "view-1", "2024-07-13")
	require.NoError(t, err)
	assert.True(t, dup)

	// A new day counts again.
	dup, err = db.RecordView(ctx, "reader", "view-1", "2024-07-14")
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestRecordRead_GatesXPAward(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	dup, err := db.RecordRead(ctx, "reader", "book-1", "2024-07-13")
	require.NoError(t, err)
	require.False(t, dup)
	xp, err := db.AwardXP(ctx, "reader", "Reader", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, xp)

	dup, err = db.RecordRead(ctx, "reader", "book-1", "2024-07-13")
	require.NoError(t, err)
	assert.True(t, dup)

	entry, err := db.XPByPlayer(ctx, "reader")
	require.NoError(t, err)
	assert.Equal(t, 5, entry.XP)
}

func TestAwardXP_AccumulatesAndUpdatesUsername(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	xp, err := db.AwardXP(ctx, "p1", "OldName", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, xp)

	xp, err = db.AwardXP(ctx, "p1", "NewName", 4)
	require.NoError(t, err)
	assert.Equal(t, 7, xp)

	entry, err := db.XPByPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "NewName", entry.Username)
}

func TestSetPlaytime_LastWriteWins(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, db.SetPlaytime(ctx, models.Playtime{PlayerID: "p1", Username: "U", Minutes: 10}))
	require.NoError(t, db.SetPlaytime(ctx, models.Playtime{PlayerID: "p1", Username: "U2", Minutes: 7}))

	top, err := db.TopPlaytime(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 7, top[0].Minutes)
	assert.Equal(t, "U2", top[0].Username)
}

func TestDeleteBook_CascadesPages(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	saveTestBook(t, db, "del-1", "p1", []string{"one", "two"})

	require.NoError(t, db.DeletePages(ctx, "del-1"))
	book, err := db.DeleteBook(ctx, "del-1")
	require.NoError(t, err)
	assert.Equal(t, "del-1", book.BookID)

	_, err = db.BookByID(ctx, "del-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.DeleteBook(ctx, "del-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaderboards(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339)

	// Two authors: alice with two published books, bob with one draft.
	saveTestBook(t, db, "lb-a1", "alice", []string{"p"})
	saveTestBook(t, db, "lb-a2", "alice", []string{"p"})
	saveTestBook(t, db, "lb-b1", "bob", []string{"p"})
	_, err := db.PublishBook(ctx, "lb-a1", "alice", false, false, now)
	require.NoError(t, err)
	_, err = db.PublishBook(ctx, "lb-a2", "alice", false, false, now)
	require.NoError(t, err)

	_, _, err = db.CastVote(ctx, "lb-a1", "v1")
	require.NoError(t, err)
	_, _, err = db.CastVote(ctx, "lb-a2", "v1")
	require.NoError(t, err)
	_, _, err = db.CastVote(ctx, "lb-b1", "v1")
	require.NoError(t, err)

	writers, err := db.MostBooksWritten(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, writers)
	assert.Equal(t, "alice", writers[0].PlayerID)
	assert.Equal(t, 2, writers[0].BooksWritten)

	// Popular-author counts published books only, so bob's upvote is excluded.
	authors, err := db.MostPopularAuthors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "alice", authors[0].PlayerID)
	assert.Equal(t, 2, authors[0].Upvotes)

	// Reads: carol read two distinct books (one twice), dave read one.
	for _, r := range [][3]string{
		{"carol", "lb-a1", "2024-07-13"},
		{"carol", "lb-a1", "2024-07-14"},
		{"carol", "lb-a2", "2024-07-13"},
		{"dave", "lb-a1", "2024-07-13"},
	} {
		_, err := db.RecordRead(ctx, r[0], r[1], r[2])
		require.NoError(t, err)
	}
	_, err = db.AwardXP(ctx, "carol", "Carol", 5)
	require.NoError(t, err)

	readers, err := db.MostBooksRead(ctx, 10)
	require.NoError(t, err)
	require.Len(t, readers, 2)
	assert.Equal(t, "carol", readers[0].PlayerID)
	assert.Equal(t, 2, readers[0].BooksRead)
	assert.Equal(t, "Carol", readers[0].Username)
	assert.Equal(t, "Unknown", readers[1].Username)

	// Comments: one from each reader on lb-a1.
	for _, p := range []string{"carol", "dave"} {
		_, err := db.AddComment(ctx, "lb-a1", models.Comment{
			PlayerID: p, Username: p, Text: "good",
			CreatedAt: now, Likes: []string{p}, Dislikes: []string{},
		})
		require.NoError(t, err)
	}
	reviewers, err := db.TopReviewers(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, reviewers, 2)
	assert.Equal(t, 1, reviewers[0].Comments)
}

func TestSetBookmark_Upserts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, db.SetBookmark(ctx, "p1", "b1", 3))
	require.NoError(t, db.SetBookmark(ctx, "p1", "b1", 8))

	bm, err := db.BookmarkByPlayer(ctx, "p1", "b1")
	require.NoError(t, err)
	assert.Equal(t, 8, bm.Page)

	_, err = db.BookmarkByPlayer(ctx, "p1", "other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendReport(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	saveTestBook(t, db, "rep-1", "p1", []string{"page"})

	report := models.Report{
		ReportID: "r1", BookID: "rep-1", BookTitle: "A Test Book",
		PlayerID: "p2", PlayerName: "P2", Reason: "spam",
		Date: time.Now().UTC().Format(time.RFC3339),
	}
	require.NoError(t, db.AppendReport(ctx, report))

	book, err := db.BookByID(ctx, "rep-1")
	require.NoError(t, err)
	require.Len(t, book.Reports, 1)
	assert.Equal(t, "spam", book.Reports[0].Reason)

	report.BookID = "missing"
	assert.ErrorIs(t, db.AppendReport(ctx, report), ErrNotFound)
}
