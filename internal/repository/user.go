package repository

import (
	"context"
	"errors"
	"time"

	"rentalhub/internal/model"
	"rentalhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate is returned when a unique index rejects a write
var ErrDuplicate = errors.New("duplicate key")

// IUserRepository defines user persistence
type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Create inserts the user; ErrDuplicate when the email is already taken
	Create(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	SetRole(ctx context.Context, email, role string, at time.Time) (model.UpdateResult, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type UserRepository struct {
	base *generic.MongoBaseRepository[*model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{base: generic.NewBaseRepository[*model.User](db.Collection(UsersCollection))}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.base.FindOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	id, err := r.base.Insert(ctx, user)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicate
	}
	return id, err
}

func (r *UserRepository) SetRole(ctx context.Context, email, role string, at time.Time) (model.UpdateResult, error) {
	res, err := r.base.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role, "timestamp": at}},
	)
	if err != nil {
		return model.UpdateResult{}, err
	}
	return model.UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.base.Count(ctx, bson.M{"role": role})
}
