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

var ErrNotFound = errors.New("not found")

// ================================
// Interface
// ================================
type OpportunityRepository interface {
	List(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Opportunity, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	// Stats facets over ALL active opportunities, independent of any listing
	// filter.
	Stats(ctx context.Context) (models.OpportunityStats, error)
	Distinct(ctx context.Context, field string, filter bson.M) ([]string, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Opportunity, error)
	Insert(ctx context.Context, opp *models.Opportunity) (*models.Opportunity, error)
}

// ================================
// Mongo implementation
// ================================
type mongoOpportunityRepo struct {
	col *mongo.Collection
}

func NewMongoOpportunityRepo(db *mongo.Database) OpportunityRepository {
	return &mongoOpportunityRepo{col: db.Collection("opportunities")}
}

func (r *mongoOpportunityRepo) List(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Opportunity, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cur, err := r.col.Find(cctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(cctx)

	items := []models.Opportunity{}
	if err := cur.All(cctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoOpportunityRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return r.col.CountDocuments(cctx, filter)
}

func (r *mongoOpportunityRepo) Stats(ctx context.Context) (models.OpportunityStats, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: "active"}}}},
		bson.D{{Key: "$facet", Value: bson.D{
			{Key: "categoryCounts", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: "$category"},
					{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				}}},
				bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
			}},
			{Key: "typeCounts", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: "$opportunityType"},
					{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				}}},
				bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
			}},
			{Key: "locations", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: "$locationType"},
					{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				}}},
			}},
		}}},
	}

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := r.col.Aggregate(cctx, pipe, options.Aggregate())
	if err != nil {
		return models.OpportunityStats{}, err
	}
	defer cur.Close(cctx)

	var out []models.OpportunityStats
	if err := cur.All(cctx, &out); err != nil {
		return models.OpportunityStats{}, err
	}
	if len(out) == 0 {
		return models.OpportunityStats{
			CategoryCounts: []models.FacetCount{},
			TypeCounts:     []models.FacetCount{},
			Locations:      []models.FacetCount{},
		}, nil
	}
	return out[0], nil
}

func (r *mongoOpportunityRepo) Distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
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

func (r *mongoOpportunityRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Opportunity, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var opp models.Opportunity
	err := r.col.FindOne(cctx, bson.M{"_id": id}).Decode(&opp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

func (r *mongoOpportunityRepo) Insert(ctx context.Context, opp *models.Opportunity) (*models.Opportunity, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	opp.CreatedAt = now
	opp.UpdatedAt = now

	res, err := r.col.InsertOne(cctx, opp)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		opp.ID = oid
	}
	return opp, nil
}
