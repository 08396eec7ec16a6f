package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Entity is a stored document with a Mongo-assigned id
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}

// MongoBaseRepository holds the collection plumbing shared by the typed
// repositories. T is a pointer model type such as *model.User.
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

// Insert assigns a fresh ObjectID and inserts the entity
func (r *MongoBaseRepository[T]) Insert(ctx context.Context, entity T) (primitive.ObjectID, error) {
	if entity.GetID().IsZero() {
		entity.SetID(primitive.NewObjectID())
	}
	if _, err := r.Collection.InsertOne(ctx, entity); err != nil {
		return primitive.NilObjectID, err
	}
	return entity.GetID(), nil
}

// FindOne returns the first match, or the zero T (nil) when nothing matches
func (r *MongoBaseRepository[T]) FindOne(ctx context.Context, filter interface{}) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, nil
		}
		return zero, err
	}
	return entity, nil
}

// FindByID looks a document up by ObjectID
func (r *MongoBaseRepository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

// Find returns every match in natural order unless opts sort
func (r *MongoBaseRepository[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *MongoBaseRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.Collection.CountDocuments(ctx, filter)
}

// UpdateOne applies update to the first match
func (r *MongoBaseRepository[T]) UpdateOne(ctx context.Context, filter, update interface{}) (*mongo.UpdateResult, error) {
	return r.Collection.UpdateOne(ctx, filter, update)
}

// DeleteMany removes every match and returns how many went
func (r *MongoBaseRepository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	res, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Sum totals a numeric field over the matching documents. An empty
// collection sums to 0.
func (r *MongoBaseRepository[T]) Sum(ctx context.Context, field string, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$" + field}}},
		}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return int64(rows[0].Total), nil
}
