package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID               bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email            string        `json:"email" bson:"email"`
	Password         string        `json:"-" bson:"password"`
	GoogleID         string        `json:"-" bson:"googleId,omitempty"`
	GitHubID         string        `json:"-" bson:"githubId,omitempty"`
	ProfileCompleted bool          `json:"profileCompleted" bson:"profileCompleted"`
	CreatedAt        time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type Profile struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId" bson:"userId"`
	FullName  string        `json:"fullName" bson:"fullName"`
	Branch    string        `json:"branch,omitempty" bson:"branch,omitempty"`
	Batch     string        `json:"batch,omitempty" bson:"batch,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type PasswordReset struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    bson.ObjectID `bson:"userId"`
	Token     string        `bson:"token"`
	ExpiresAt time.Time     `bson:"expiresAt"`
	Used      bool          `bson:"used"`
	CreatedAt time.Time     `bson:"createdAt"`
}
