package models

// Report is an abuse report. Append-only audit log; there is no read or
// resolution workflow.
type Report struct {
	ReportID   string `bson:"reportId" json:"reportId"`
	BookID     string `bson:"bookId" json:"bookId"`
	BookTitle  string `bson:"bookTitle" json:"bookTitle"`
	PlayerID   string `bson:"playerId" json:"playerId"`
	PlayerName string `bson:"playerName" json:"playerName"`
	Reason     string `bson:"reason" json:"reason"`
	Date       string `bson:"date" json:"date"`
}
