package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	vitalsErrors "github.com/tidepool-org/vitals/errors"
)

var ErrConflict = fmt.Errorf("%w: the collection was modified concurrently", vitalsErrors.Conflict)

func IsDuplicateKeyError(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(mongo.ServerError); ok {
			return e.HasErrorCode(11000) || e.HasErrorCode(11001) || e.HasErrorCode(12582) ||
				e.HasErrorCodeWithMessage(16460, " E11000 ")
		}
	}
	return false
}
