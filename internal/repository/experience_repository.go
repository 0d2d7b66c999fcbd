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

var (
	// ErrNotOwner covers both a missing document and one owned by another
	// user; the two are indistinguishable on purpose.
	ErrNotOwner = errors.New("experience not found or not owned by caller")
	// ErrNotDraft means the submit transition was attempted on a record that
	// already left draft state.
	ErrNotDraft = errors.New("experience already submitted")
)

type ExperienceRepository interface {
	Insert(ctx context.Context, exp *models.Experience) (*models.Experience, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Experience, error)
	ReplaceRounds(ctx context.Context, id, userID bson.ObjectID, rounds []models.Round) error
	ReplaceMaterials(ctx context.Context, id, userID bson.ObjectID, materials []models.Material) error
	// Submit moves a draft to pending. One-way.
	Submit(ctx context.Context, id, userID bson.ObjectID) error
	LatestDraft(ctx context.Context, userID bson.ObjectID) (*models.Experience, error)
	Browse(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Experience, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Distinct(ctx context.Context, field string, filter bson.M) ([]string, error)
}

type mongoExperienceRepo struct {
	col *mongo.Collection
}

func NewMongoExperienceRepo(db *mongo.Database) ExperienceRepository {
	return &mongoExperienceRepo{col: db.Collection("experiences")}
}

func (r *mongoExperienceRepo) Insert(ctx context.Context, exp *models.Experience) (*models.Experience, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	exp.CreatedAt = now
	exp.UpdatedAt = now
	if exp.Rounds == nil {
		exp.Rounds = []models.Round{}
	}
	if exp.Materials == nil {
		exp.Materials = []models.Material{}
	}

	res, err := r.col.InsertOne(cctx, exp)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		exp.ID = oid
	}
	return exp, nil
}

func (r *mongoExperienceRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Experience, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exp models.Experience
	err := r.col.FindOne(cctx, bson.M{"_id": id}).Decode(&exp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// setPhase overwrites one wizard phase. Autosave and manual save both land
// here, so the update must stay an idempotent overwrite.
func (r *mongoExperienceRepo) setPhase(ctx context.Context, id, userID bson.ObjectID, field string, value any) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.UpdateOne(cctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{field: value, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotOwner
	}
	return nil
}

func (r *mongoExperienceRepo) ReplaceRounds(ctx context.Context, id, userID bson.ObjectID, rounds []models.Round) error {
	if rounds == nil {
		rounds = []models.Round{}
	}
	return r.setPhase(ctx, id, userID, "rounds", rounds)
}

func (r *mongoExperienceRepo) ReplaceMaterials(ctx context.Context, id, userID bson.ObjectID, materials []models.Material) error {
	if materials == nil {
		materials = []models.Material{}
	}
	return r.setPhase(ctx, id, userID, "materials", materials)
}

func (r *mongoExperienceRepo) Submit(ctx context.Context, id, userID bson.ObjectID) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.UpdateOne(cctx,
		bson.M{"_id": id, "userId": userID, "status": "draft"},
		bson.M{"$set": bson.M{"status": "pending", "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish "not yours" from "not a draft" for the 409 path.
		n, cerr := r.col.CountDocuments(cctx, bson.M{"_id": id, "userId": userID})
		if cerr == nil && n > 0 {
			return ErrNotDraft
		}
		return ErrNotOwner
	}
	return nil
}

func (r *mongoExperienceRepo) LatestDraft(ctx context.Context, userID bson.ObjectID) (*models.Experience, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	var exp models.Experience
	err := r.col.FindOne(cctx, bson.M{"userId": userID, "status": "draft"}, opts).Decode(&exp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *mongoExperienceRepo) Browse(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Experience, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(cctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(cctx)

	items := []models.Experience{}
	if err := cur.All(cctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoExperienceRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return r.col.CountDocuments(cctx, filter)
}

func (r *mongoExperienceRepo) Distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res := r.col.Distinct(cctx, field, filter)
	if res.Err() != nil {
		return nil, res.Err()
	}
	values := []string{}
	if err := res.Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}
