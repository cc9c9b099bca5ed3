package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

// Book is one book record: metadata, lifecycle state and engagement
// aggregates. Page text lives in the book_contents collection; Content is
// populated from there on single-book fetches.
type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BookID      string             `bson:"bookId" json:"bookId"`
	PlayerID    string             `bson:"playerId" json:"playerId"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"`
	CoverID     string             `bson:"coverId" json:"coverId"`
	Genres      []string           `bson:"genres" json:"genres"`
	GlowingBook bool               `bson:"glowingBook" json:"glowingBook"`
	CustomCover bool               `bson:"customCover" json:"customCover"`
	Status      string             `bson:"status" json:"status"`
	Published   bool               `bson:"published" json:"published"`
	PageCount   int                `bson:"pageCount" json:"pageCount"`
	Views       int                `bson:"views" json:"views"`
	Upvotes     int                `bson:"upvotes" json:"upvotes"`
	Voters      []string           `bson:"voters" json:"voters"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	Reports     []Report           `bson:"reports" json:"reports"`
	CreatedAt   string             `bson:"createdAt" json:"createdAt"`
	UpdatedAt   string             `bson:"updatedAt" json:"updatedAt"`

	Content []string `bson:"-" json:"content,omitempty"`
}
