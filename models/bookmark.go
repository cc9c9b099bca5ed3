package models

import "time"

// Bookmark is a player's saved reading position in a book, one per
// (playerId, bookId), last-write-wins.
type Bookmark struct {
	PlayerID  string    `bson:"playerId" json:"playerId"`
	BookID    string    `bson:"bookId" json:"bookId"`
	Page      int       `bson:"page" json:"page"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
