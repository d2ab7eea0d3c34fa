package store_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/store"
)

var _ = Describe("Errors", func() {
	It("reports concurrent modifications as conflicts", func() {
		err := fmt.Errorf("unable to save patients: %w", store.ErrConflict)
		Expect(err).To(MatchError(errors.Conflict))
		Expect(err).To(MatchError(store.ErrConflict))
	})

	It("detects wrapped duplicate key errors", func() {
		duplicate := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
		Expect(store.IsDuplicateKeyError(fmt.Errorf("replace: %w", duplicate))).To(BeTrue())
	})

	It("ignores other server errors", func() {
		other := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121, Message: "document failed validation"}}}
		Expect(store.IsDuplicateKeyError(other)).To(BeFalse())
	})
})
