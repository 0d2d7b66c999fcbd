package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// IdentityRepository is the read-only view the opportunity service has of
// users and profiles: enough to turn a poster id into a display name, one
// batched query per collection.
type IdentityRepository interface {
	ProfileNamesByUserIDs(ctx context.Context, ids []bson.ObjectID) (map[string]string, error)
	EmailsByUserIDs(ctx context.Context, ids []bson.ObjectID) (map[string]string, error)
}

type mongoIdentityRepo struct {
	profiles *mongo.Collection
	users    *mongo.Collection
}

func NewMongoIdentityRepo(db *mongo.Database) IdentityRepository {
	return &mongoIdentityRepo{
		profiles: db.Collection("profiles"),
		users:    db.Collection("users"),
	}
}

func (r *mongoIdentityRepo) ProfileNamesByUserIDs(ctx context.Context, ids []bson.ObjectID) (map[string]string, error) {
	out := map[string]string{}
	if len(ids) == 0 {
		return out, nil
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.profiles.Find(cctx, bson.M{"userId": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(cctx)

	var docs []struct {
		UserID   bson.ObjectID `bson:"userId"`
		FullName string        `bson:"fullName"`
	}
	if err := cur.All(cctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.UserID.Hex()] = d.FullName
	}
	return out, nil
}

func (r *mongoIdentityRepo) EmailsByUserIDs(ctx context.Context, ids []bson.ObjectID) (map[string]string, error) {
	out := map[string]string{}
	if len(ids) == 0 {
		return out, nil
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.users.Find(cctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(cctx)

	var docs []struct {
		ID    bson.ObjectID `bson:"_id"`
		Email string        `bson:"email"`
	}
	if err := cur.All(cctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.ID.Hex()] = d.Email
	}
	return out, nil
}
