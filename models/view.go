package models

// View is a per-day dedup record: at most one per (playerId, bookId, date),
// enforced by a unique index. Date is a UTC calendar day, YYYY-MM-DD.
type View struct {
	PlayerID string `bson:"playerId" json:"playerId"`
	BookID   string `bson:"bookId" json:"bookId"`
	Date     string `bson:"date" json:"date"`
}
