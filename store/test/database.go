package test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tidepool-org/vitals/store"
	"github.com/tidepool-org/vitals/test"
)

const (
	mongoTestHost = "mongodb://127.0.0.1:27017"
	mongoTimeout  = time.Second * 2
)

var (
	database *mongo.Database
)

// SetupDatabase connects to a local mongo instance if one is reachable.
// Specs that need it call GetTestDatabase, which skips them otherwise.
func SetupDatabase() {
	client, err := store.NewClient(mongoTestHost)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return
	}

	databaseName := fmt.Sprintf("vitals_test_%s_%d", test.Faker.Letter(), GinkgoParallelProcess())
	database = client.Database(databaseName)
}

func TeardownDatabase() {
	if database == nil {
		return
	}
	err := database.Drop(context.Background())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).ToNot(HaveOccurred())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	if database == nil {
		Skip("mongo is not available at " + mongoTestHost)
	}
	return database
}
