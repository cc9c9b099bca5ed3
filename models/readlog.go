package models

// ReadLog gates the once-per-day XP award for reading a book. Same dedup key
// as View: (playerId, bookId, date) with date a UTC calendar day.
type ReadLog struct {
	PlayerID string `bson:"playerId" json:"playerId"`
	BookID   string `bson:"bookId" json:"bookId"`
	Date     string `bson:"date" json:"date"`
}
