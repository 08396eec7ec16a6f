package repository

import (
	"context"

	"rentalhub/internal/model"
	"rentalhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IPaymentRepository defines finalized payment persistence
type IPaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) (primitive.ObjectID, error)
	// ListByEmail filters by month as well when month is non-empty
	ListByEmail(ctx context.Context, email, month string) ([]*model.Payment, error)
}

type PaymentRepository struct {
	base *generic.MongoBaseRepository[*model.Payment]
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{base: generic.NewBaseRepository[*model.Payment](db.Collection(PaymentsCollection))}
}

func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) (primitive.ObjectID, error) {
	return r.base.Insert(ctx, p)
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email, month string) ([]*model.Payment, error) {
	filter := bson.M{"email": email}
	if month != "" {
		filter["date"] = month
	}
	return r.base.Find(ctx, filter)
}

// IPaymentInfoRepository defines staged payment info persistence
type IPaymentInfoRepository interface {
	Create(ctx context.Context, p *model.PaymentInfo) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) ([]*model.PaymentInfo, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type PaymentInfoRepository struct {
	base *generic.MongoBaseRepository[*model.PaymentInfo]
}

func NewPaymentInfoRepository(db *mongo.Database) IPaymentInfoRepository {
	return &PaymentInfoRepository{base: generic.NewBaseRepository[*model.PaymentInfo](db.Collection(PaymentInfoCollection))}
}

func (r *PaymentInfoRepository) Create(ctx context.Context, p *model.PaymentInfo) (primitive.ObjectID, error) {
	return r.base.Insert(ctx, p)
}

func (r *PaymentInfoRepository) FindByEmail(ctx context.Context, email string) ([]*model.PaymentInfo, error) {
	return r.base.Find(ctx, bson.M{"email": email})
}

func (r *PaymentInfoRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return r.base.DeleteMany(ctx, bson.M{"email": email})
}

func (r *PaymentInfoRepository) DeleteAll(ctx context.Context) (int64, error) {
	return r.base.DeleteMany(ctx, bson.M{})
}
