package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// indexSpec describes one desired index
type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

func desiredIndexes() []indexSpec {
	return []indexSpec{
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}},
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_role"),
		}},
		{CouponsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetName("uniq_code").SetUnique(true),
		}},
		{MembersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email"),
		}},
		{AgreementsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email"),
		}},
		{PaymentsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_email_date"),
		}},
		{PaymentInfoCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email"),
		}},
	}
}

/*
EnsureIndexes is called at startup and by `rentalctl indexes`. CreateOne is
idempotent for identical specs. Problems are aggregated so every failing
collection is visible at once; a unique index that cannot be built because
existing data already violates it is reported, not fixed.
*/
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string
	for _, spec := range desiredIndexes() {
		name, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model)
		if err != nil {
			if isOptionsConflictErr(err) {
				logger.Warn("index exists with different options; leaving it",
					zap.String("collection", spec.collection), zap.Error(err))
				continue
			}
			problems = append(problems, spec.collection+": "+err.Error())
			continue
		}
		logger.Debug("index ensured", zap.String("collection", spec.collection), zap.String("index", name))
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Mongo returns IndexOptionsConflict / IndexKeySpecsConflict when an index
// with the same keys already exists under another name or options.
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 85 || ce.Code == 86) {
		return true
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
