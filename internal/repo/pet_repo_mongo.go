package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/protim1451/task-12-server/internal/domain"
)

type PetRepo struct{ col *mongo.Collection }

func NewPetRepo(db *mongo.Database) *PetRepo {
	return &PetRepo{col: db.Collection("pets")}
}

func (r *PetRepo) Insert(ctx context.Context, p *domain.Pet) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// List returns the public listing window: adopted pets are filtered out,
// newest first, skip = (page-1)*pageSize.
func (r *PetRepo) List(ctx context.Context, pg domain.PetPage) ([]domain.Pet, error) {
	filter := bson.M{"adopted": false}
	if pg.Owner != "" {
		filter["owner"] = pg.Owner
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "addedAt", Value: -1}}).
		SetSkip((pg.Page - 1) * pg.PageSize).
		SetLimit(pg.PageSize)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	pets := make([]domain.Pet, 0)
	if err := cur.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetRepo) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var p domain.Pet
	err = r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetRepo) FindByOwner(ctx context.Context, ownerEmail string) ([]domain.Pet, error) {
	cur, err := r.col.Find(ctx, bson.M{"owner": ownerEmail})
	if err != nil {
		return nil, err
	}
	pets := make([]domain.Pet, 0)
	if err := cur.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetRepo) Update(ctx context.Context, id string, fields map[string]any) (domain.UpdateResult, error) {
	objID, err := oid(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *PetRepo) MarkAdopted(ctx context.Context, id string) (domain.UpdateResult, error) {
	return r.Update(ctx, id, map[string]any{"adopted": true})
}

func (r *PetRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	objID, err := oid(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
