package models

import "time"

// XP is one progression ledger entry per player. XP only ever increases;
// username is last-write-wins.
type XP struct {
	PlayerID  string    `bson:"playerId" json:"playerId"`
	Username  string    `bson:"username" json:"username"`
	XP        int       `bson:"xp" json:"xp"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
