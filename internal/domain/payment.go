package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is immutable once recorded.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CampaignID    string             `bson:"campaignId,omitempty" json:"campaignId,omitempty"`
	CartIDs       []string           `bson:"cartIds,omitempty" json:"cartIds,omitempty"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
}

type PaymentRepository interface {
	Insert(ctx context.Context, p *Payment) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]Payment, error)
	ListAll(ctx context.Context) ([]Payment, error)
	// ClearCart deletes the cart items with the given ids. It runs after a
	// payment insert and is best-effort: callers must not treat a failure
	// here as a failure of the payment itself.
	ClearCart(ctx context.Context, cartIDs []string) (DeleteResult, error)
}
