package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/protim1451/task-12-server/internal/domain"
)

type AdoptionRepo struct{ col *mongo.Collection }

func NewAdoptionRepo(db *mongo.Database) *AdoptionRepo {
	return &AdoptionRepo{col: db.Collection("adoptions")}
}

func (r *AdoptionRepo) Insert(ctx context.Context, a *domain.AdoptionRequest) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *AdoptionRepo) ListByPetIDs(ctx context.Context, petIDs []primitive.ObjectID) ([]domain.AdoptionRequest, error) {
	reqs := make([]domain.AdoptionRequest, 0)
	if len(petIDs) == 0 {
		return reqs, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"petId": bson.M{"$in": petIDs}})
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *AdoptionRepo) SetStatus(ctx context.Context, id, status string) (domain.UpdateResult, error) {
	objID, err := oid(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
