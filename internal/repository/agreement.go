package repository

import (
	"context"

	"rentalhub/internal/model"
	"rentalhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IAgreementRepository defines agreement request persistence
type IAgreementRepository interface {
	Create(ctx context.Context, a *model.Agreement) (primitive.ObjectID, error)
	List(ctx context.Context) ([]*model.Agreement, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Agreement, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type AgreementRepository struct {
	base *generic.MongoBaseRepository[*model.Agreement]
}

func NewAgreementRepository(db *mongo.Database) IAgreementRepository {
	return &AgreementRepository{base: generic.NewBaseRepository[*model.Agreement](db.Collection(AgreementsCollection))}
}

func (r *AgreementRepository) Create(ctx context.Context, a *model.Agreement) (primitive.ObjectID, error) {
	return r.base.Insert(ctx, a)
}

func (r *AgreementRepository) List(ctx context.Context) ([]*model.Agreement, error) {
	return r.base.Find(ctx, nil)
}

func (r *AgreementRepository) FindByEmail(ctx context.Context, email string) ([]*model.Agreement, error) {
	return r.base.Find(ctx, bson.M{"email": email})
}

func (r *AgreementRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return r.base.DeleteMany(ctx, bson.M{"email": email})
}
