package models

// Comment is embedded in a Book. At most one per (book, player); the
// commenter is auto-included in its own likes.
type Comment struct {
	PlayerID  string   `bson:"playerId" json:"playerId"`
	Username  string   `bson:"username" json:"username"`
	Text      string   `bson:"text" json:"text"`
	CreatedAt string   `bson:"createdAt" json:"createdAt"`
	Likes     []string `bson:"likes" json:"likes"`
	Dislikes  []string `bson:"dislikes" json:"dislikes"`
}
