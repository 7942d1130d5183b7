package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/protim1451/task-12-server/internal/domain"
)

type UserRepo struct{ col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) PromoteToAdmin(ctx context.Context, id string) (domain.UpdateResult, error) {
	objID, err := oid(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"role": domain.RoleAdmin}},
	)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
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
