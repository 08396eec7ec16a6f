package repository

import (
	"context"

	"rentalhub/internal/model"
	"rentalhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IMemberRepository defines member record persistence
type IMemberRepository interface {
	Create(ctx context.Context, m *model.Member) (primitive.ObjectID, error)
	List(ctx context.Context) ([]*model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	// SumRooms totals apartmentNo over every member record
	SumRooms(ctx context.Context) (int64, error)
}

type MemberRepository struct {
	base *generic.MongoBaseRepository[*model.Member]
}

func NewMemberRepository(db *mongo.Database) IMemberRepository {
	return &MemberRepository{base: generic.NewBaseRepository[*model.Member](db.Collection(MembersCollection))}
}

func (r *MemberRepository) Create(ctx context.Context, m *model.Member) (primitive.ObjectID, error) {
	return r.base.Insert(ctx, m)
}

func (r *MemberRepository) List(ctx context.Context) ([]*model.Member, error) {
	return r.base.Find(ctx, nil)
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	return r.base.FindOne(ctx, bson.M{"email": email})
}

func (r *MemberRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return r.base.DeleteMany(ctx, bson.M{"email": email})
}

func (r *MemberRepository) SumRooms(ctx context.Context) (int64, error) {
	return r.base.Sum(ctx, "apartmentNo", nil)
}
