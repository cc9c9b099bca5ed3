package models

// Playtime is one entry per player, last-write-wins on every field.
type Playtime struct {
	PlayerID  string `bson:"playerId" json:"playerId"`
	Username  string `bson:"username" json:"username"`
	Thumbnail string `bson:"thumbnail" json:"thumbnail"`
	Minutes   int    `bson:"minutes" json:"minutes"`
}
