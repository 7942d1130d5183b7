package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/protim1451/task-12-server/internal/domain"
)

// PaymentRepo also owns the carts collection: cart items reference
// payments only at checkout, when they get cleared.
type PaymentRepo struct {
	col   *mongo.Collection
	carts *mongo.Collection
}

func NewPaymentRepo(db *mongo.Database) *PaymentRepo {
	return &PaymentRepo{
		col:   db.Collection("payments"),
		carts: db.Collection("carts"),
	}
}

func (r *PaymentRepo) Insert(ctx context.Context, p *domain.Payment) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *PaymentRepo) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *PaymentRepo) ListAll(ctx context.Context) ([]domain.Payment, error) {
	return r.list(ctx, bson.M{})
}

func (r *PaymentRepo) list(ctx context.Context, filter bson.M) ([]domain.Payment, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearCart deletes the referenced cart items. Unparseable ids are
// skipped, not fatal: the payment is already committed by the time this
// runs.
func (r *PaymentRepo) ClearCart(ctx context.Context, cartIDs []string) (domain.DeleteResult, error) {
	ids := make([]primitive.ObjectID, 0, len(cartIDs))
	for _, id := range cartIDs {
		objID, err := oid(id)
		if err != nil {
			continue
		}
		ids = append(ids, objID)
	}
	if len(ids) == 0 {
		return domain.DeleteResult{}, nil
	}
	res, err := r.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
