// Package domain holds the entity models, repository contracts and the
// sentinel errors shared by transport and storage.
package domain

import "errors"

var (
	// ErrInvalidID marks a resource id that is not a valid ObjectID hex
	// string. Handlers turn it into a 400 before any storage call.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound marks a lookup that matched no document.
	ErrNotFound = errors.New("not found")
)

// UpdateResult mirrors the driver's updateOne result shape.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the driver's deleteOne/deleteMany result shape.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
