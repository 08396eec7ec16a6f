package repository

import (
	"context"
	"time"

	"rentalhub/internal/model"
	"rentalhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ICouponRepository defines coupon persistence
type ICouponRepository interface {
	// Create inserts the coupon; ErrDuplicate when the code is already taken
	Create(ctx context.Context, c *model.Coupon) (primitive.ObjectID, error)
	List(ctx context.Context) ([]*model.Coupon, error)
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *model.CouponUpdateRequest, at time.Time) (model.UpdateResult, error)
}

type CouponRepository struct {
	base *generic.MongoBaseRepository[*model.Coupon]
}

func NewCouponRepository(db *mongo.Database) ICouponRepository {
	return &CouponRepository{base: generic.NewBaseRepository[*model.Coupon](db.Collection(CouponsCollection))}
}

func (r *CouponRepository) Create(ctx context.Context, c *model.Coupon) (primitive.ObjectID, error) {
	id, err := r.base.Insert(ctx, c)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicate
	}
	return id, err
}

func (r *CouponRepository) List(ctx context.Context) ([]*model.Coupon, error) {
	return r.base.Find(ctx, nil)
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	return r.base.FindOne(ctx, bson.M{"code": code})
}

func (r *CouponRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	return r.base.FindByID(ctx, id)
}

func (r *CouponRepository) Update(ctx context.Context, id primitive.ObjectID, upd *model.CouponUpdateRequest, at time.Time) (model.UpdateResult, error) {
	set := bson.M{"updatedAt": at}
	if upd.Code != nil {
		set["code"] = *upd.Code
	}
	if upd.Discount != nil {
		set["discount"] = *upd.Discount
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Available != nil {
		set["available"] = *upd.Available
	}

	res, err := r.base.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.UpdateResult{}, ErrDuplicate
		}
		return model.UpdateResult{}, err
	}
	return model.UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
