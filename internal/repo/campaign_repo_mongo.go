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

type CampaignRepo struct{ col *mongo.Collection }

func NewCampaignRepo(db *mongo.Database) *CampaignRepo {
	return &CampaignRepo{col: db.Collection("donationCampaigns")}
}

func (r *CampaignRepo) Insert(ctx context.Context, dc *domain.DonationCampaign) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, dc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// List has no implicit filter: paused campaigns stay visible so their
// pages can say so.
func (r *CampaignRepo) List(ctx context.Context, page, pageSize int64) ([]domain.DonationCampaign, error) {
	opts := options.Find().
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DonationCampaign, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CampaignRepo) FindByID(ctx context.Context, id string) (*domain.DonationCampaign, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var dc domain.DonationCampaign
	err = r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&dc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dc, nil
}

func (r *CampaignRepo) Update(ctx context.Context, id string, fields map[string]any) (domain.UpdateResult, error) {
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

func (r *CampaignRepo) SetPaused(ctx context.Context, id string, paused bool) (domain.UpdateResult, error) {
	return r.Update(ctx, id, map[string]any{"isPaused": paused})
}

func (r *CampaignRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
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

// Recommended picks up to domain.RecommendedLimit campaigns other than
// excludeID, in storage order. No relevance ranking.
func (r *CampaignRepo) Recommended(ctx context.Context, excludeID string) ([]domain.DonationCampaign, error) {
	filter := bson.M{}
	if excludeID != "" {
		objID, err := oid(excludeID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = bson.M{"$ne": objID}
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(domain.RecommendedLimit))
	if err != nil {
		return nil, err
	}
	out := make([]domain.DonationCampaign, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
