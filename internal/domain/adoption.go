package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AdoptionPending  = "pending"
	AdoptionAccepted = "accepted"
	AdoptionRejected = "rejected"
)

// ValidDecision reports whether s is a status an owner may set on a
// request. "pending" is only ever the initial value.
func ValidDecision(s string) bool {
	return s == AdoptionAccepted || s == AdoptionRejected
}

type AdoptionRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PetID       primitive.ObjectID `bson:"petId" json:"petId"`
	PetName     string             `bson:"petName,omitempty" json:"petName,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Status      string             `bson:"status" json:"status"`
	RequestedAt time.Time          `bson:"requestedAt,omitempty" json:"requestedAt,omitempty"`
}

type AdoptionRepository interface {
	Insert(ctx context.Context, a *AdoptionRequest) (primitive.ObjectID, error)
	// ListByPetIDs returns the requests targeting any of the given pets.
	ListByPetIDs(ctx context.Context, petIDs []primitive.ObjectID) ([]AdoptionRequest, error)
	SetStatus(ctx context.Context, id, status string) (UpdateResult, error)
}
