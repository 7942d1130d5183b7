package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationCampaign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PetName          string             `bson:"petName" json:"petName"`
	PetImage         string             `bson:"petImage" json:"petImage"`
	MaxAmount        float64            `bson:"maxAmount" json:"maxAmount"`
	LastDate         string             `bson:"lastDate" json:"lastDate"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	Owner            string             `bson:"owner" json:"owner"`
	IsPaused         bool               `bson:"isPaused" json:"isPaused"`
}

// RecommendedLimit caps the recommended-campaigns result set.
const RecommendedLimit = 3

type CampaignRepository interface {
	Insert(ctx context.Context, dc *DonationCampaign) (primitive.ObjectID, error)
	List(ctx context.Context, page, pageSize int64) ([]DonationCampaign, error)
	// FindByID returns (nil, nil) when the campaign does not exist.
	FindByID(ctx context.Context, id string) (*DonationCampaign, error)
	Update(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	SetPaused(ctx context.Context, id string, paused bool) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
	// Recommended returns up to RecommendedLimit campaigns, skipping
	// excludeID. Order is whatever the storage returns.
	Recommended(ctx context.Context, excludeID string) ([]DonationCampaign, error)
}
