package domain

import (
	"time"
)

// Metabolism groups the body attributes a user may fill in after
// registration. All fields default to zero/empty until explicitly set.
type Metabolism struct {
	Weight int    `bson:"weight" json:"weight"`
	Height int    `bson:"height" json:"height"`
	Age    int    `bson:"age" json:"age"`
	Sex    string `bson:"sex" json:"sex"`
}

// User represents a registered account. The username is the external key:
// unique across all users and re-submitted with every request (there is no
// session or token layer). Programs reference their owner by username.
type User struct {
	Username     string     `bson:"username" json:"username"`
	PasswordHash string     `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Metabolism   Metabolism `bson:"metabolism" json:"metabolism"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
