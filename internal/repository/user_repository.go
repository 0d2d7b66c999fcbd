package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"placehub-backend/internal/models"
)

var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error
	SetProfileCompleted(ctx context.Context, id bson.ObjectID, done bool) error

	GetProfile(ctx context.Context, userID bson.ObjectID) (*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)

	CreateReset(ctx context.Context, reset *models.PasswordReset) error
	FindReset(ctx context.Context, token string) (*models.PasswordReset, error)
	MarkResetUsed(ctx context.Context, id bson.ObjectID) error
}

type mongoUserRepo struct {
	users    *mongo.Collection
	profiles *mongo.Collection
	resets   *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{
		users:    db.Collection("users"),
		profiles: db.Collection("profiles"),
		resets:   db.Collection("password_resets"),
	}
}

func (r *mongoUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.users.InsertOne(cctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (r *mongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.users.FindOne(cctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) FindUserByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.users.FindOne(cctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.users.UpdateOne(cctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now().UTC()}},
	)
	return err
}

func (r *mongoUserRepo) SetProfileCompleted(ctx context.Context, id bson.ObjectID, done bool) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.users.UpdateOne(cctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"profileCompleted": done, "updatedAt": time.Now().UTC()}},
	)
	return err
}

func (r *mongoUserRepo) GetProfile(ctx context.Context, userID bson.ObjectID) (*models.Profile, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := r.profiles.FindOne(cctx, bson.M{"userId": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *mongoUserRepo) UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.Profile
	err := r.profiles.FindOneAndUpdate(cctx,
		bson.M{"userId": profile.UserID},
		bson.M{
			"$set": bson.M{
				"fullName":  profile.FullName,
				"branch":    profile.Branch,
				"batch":     profile.Batch,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		opts,
	).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *mongoUserRepo) CreateReset(ctx context.Context, reset *models.PasswordReset) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	reset.CreatedAt = time.Now().UTC()
	_, err := r.resets.InsertOne(cctx, reset)
	return err
}

func (r *mongoUserRepo) FindReset(ctx context.Context, token string) (*models.PasswordReset, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reset models.PasswordReset
	err := r.resets.FindOne(cctx, bson.M{"token": token}).Decode(&reset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *mongoUserRepo) MarkResetUsed(ctx context.Context, id bson.ObjectID) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.resets.UpdateOne(cctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"used": true}},
	)
	return err
}
