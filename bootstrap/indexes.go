package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the query paths rely on. Safe to run on
// every boot; Mongo treats an existing identical index as a no-op.
func EnsureIndexes(db *mongo.Database) error {
	// Full-text search over opportunity listings. Fields here define what
	// the `search` query parameter can match.
	_, err := db.Collection("opportunities").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "companyName", Value: "text"},
				{Key: "category", Value: "text"},
				{Key: "skills", Value: "text"},
			},
			Options: options.Index().SetName("opportunity_text"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("opportunities").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("status_created"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("experiences").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "companyName", Value: "text"},
				{Key: "roleAppliedFor", Value: "text"},
			},
			Options: options.Index().SetName("experience_text"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	return err
}
