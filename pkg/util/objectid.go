package util

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidObjectID is wrapped by ParseObjectID failures
var ErrInvalidObjectID = errors.New("invalid object id")

// ParseObjectID converts a 24-character hex string to an ObjectID
func ParseObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", ErrInvalidObjectID, id, err)
	}
	return objID, nil
}
