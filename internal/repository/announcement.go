package repository

import (
	"context"

	"rentalhub/internal/model"
	"rentalhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IAnnouncementRepository defines announcement persistence
type IAnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) (primitive.ObjectID, error)
	List(ctx context.Context) ([]*model.Announcement, error)
}

type AnnouncementRepository struct {
	base *generic.MongoBaseRepository[*model.Announcement]
}

func NewAnnouncementRepository(db *mongo.Database) IAnnouncementRepository {
	return &AnnouncementRepository{base: generic.NewBaseRepository[*model.Announcement](db.Collection(AnnouncementsCollection))}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) (primitive.ObjectID, error) {
	return r.base.Insert(ctx, a)
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]*model.Announcement, error) {
	return r.base.Find(ctx, nil)
}
