// Package repo implements the domain repositories on MongoDB. Every
// repository shares the one client opened at startup; each operation is
// individually atomic, nothing here opens a transaction.
package repo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/protim1451/task-12-server/internal/domain"
)

// oid parses a path/query id. A malformed hex string surfaces as
// domain.ErrInvalidID so handlers answer 400 instead of hitting storage.
func oid(id string) (primitive.ObjectID, error) {
	v, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return v, nil
}
