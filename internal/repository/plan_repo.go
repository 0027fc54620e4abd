package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"leadlens/internal/model"
)

// PlanRepo handles MongoDB operations for development plans
type PlanRepo interface {
	Create(ctx context.Context, plan *model.DevelopmentPlan) error
	GetByID(ctx context.Context, id string) (*model.DevelopmentPlan, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.DevelopmentPlan, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (*model.DevelopmentPlan, error)
	Update(ctx context.Context, plan *model.DevelopmentPlan) error
}

type planRepo struct {
	collection *mongo.Collection
}

// NewPlanRepo creates a new plan repository
func NewPlanRepo(db *mongo.Database) PlanRepo {
	return &planRepo{
		collection: db.Collection("plans"),
	}
}

func (r *planRepo) Create(ctx context.Context, plan *model.DevelopmentPlan) error {
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

func (r *planRepo) GetByID(ctx context.Context, id string) (*model.DevelopmentPlan, error) {
	var plan model.DevelopmentPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) GetByUserID(ctx context.Context, userID string) ([]*model.DevelopmentPlan, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []*model.DevelopmentPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepo) GetByAssessmentID(ctx context.Context, assessmentID string) (*model.DevelopmentPlan, error) {
	var plan model.DevelopmentPlan
	err := r.collection.FindOne(ctx, bson.M{"assessmentId": assessmentID}).Decode(&plan)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) Update(ctx context.Context, plan *model.DevelopmentPlan) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID}, plan)
	return err
}
