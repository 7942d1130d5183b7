package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Age              int                `bson:"age" json:"age"`
	Category         string             `bson:"category" json:"category"`
	Location         string             `bson:"location" json:"location"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	ImageURL         string             `bson:"imageUrl" json:"imageUrl"`
	Owner            string             `bson:"owner" json:"owner"` // owner's email
	Adopted          bool               `bson:"adopted" json:"adopted"`
	AddedAt          time.Time          `bson:"addedAt" json:"addedAt"`
}

// PetPage is the pagination window for pet listings.
type PetPage struct {
	Page     int64
	PageSize int64
	Owner    string // optional owner filter
}

type PetRepository interface {
	Insert(ctx context.Context, p *Pet) (primitive.ObjectID, error)
	// List returns un-adopted pets, newest first, sliced by the window.
	List(ctx context.Context, pg PetPage) ([]Pet, error)
	// FindByID returns (nil, nil) when the pet does not exist.
	FindByID(ctx context.Context, id string) (*Pet, error)
	// FindByOwner returns every pet owned by the email, adopted or not.
	FindByOwner(ctx context.Context, ownerEmail string) ([]Pet, error)
	// Update merges only the supplied fields into the document.
	Update(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	// MarkAdopted flips adopted=true; the record is kept, listings filter it.
	MarkAdopted(ctx context.Context, id string) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
