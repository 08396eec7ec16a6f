package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoURIEnv names the variable that enables tests against a live server
const MongoURIEnv = "RENTALHUB_TEST_MONGO_URI"

// SetupTestDB connects to the server in RENTALHUB_TEST_MONGO_URI and returns
// a uniquely named database that is dropped when the test ends. The test is
// skipped when the variable is unset.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(MongoURIEnv)
	if uri == "" {
		t.Skipf("%s not set", MongoURIEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("failed to ping MongoDB: %v", err)
	}

	db := client.Database(fmt.Sprintf("rentalhub_test_%s", primitive.NewObjectID().Hex()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}
