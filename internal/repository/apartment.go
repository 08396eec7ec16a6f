package repository

import (
	"context"

	"rentalhub/internal/model"
	"rentalhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IApartmentRepository defines apartment persistence
type IApartmentRepository interface {
	// List returns apartments in natural order. limit 0 means no limit.
	List(ctx context.Context, skip, limit int64) ([]*model.Apartment, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, apt *model.Apartment) (primitive.ObjectID, error)
	// SumRooms totals apartmentNo over every apartment
	SumRooms(ctx context.Context) (int64, error)
}

type ApartmentRepository struct {
	base *generic.MongoBaseRepository[*model.Apartment]
}

func NewApartmentRepository(db *mongo.Database) IApartmentRepository {
	return &ApartmentRepository{base: generic.NewBaseRepository[*model.Apartment](db.Collection(ApartmentsCollection))}
}

func (r *ApartmentRepository) List(ctx context.Context, skip, limit int64) ([]*model.Apartment, error) {
	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.base.Find(ctx, nil, opts)
}

func (r *ApartmentRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx, nil)
}

func (r *ApartmentRepository) Create(ctx context.Context, apt *model.Apartment) (primitive.ObjectID, error) {
	return r.base.Insert(ctx, apt)
}

func (r *ApartmentRepository) SumRooms(ctx context.Context) (int64, error) {
	return r.base.Sum(ctx, "apartmentNo", nil)
}
