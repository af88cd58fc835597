package submission

import (
	"context"
	"errors"
	"regexp"

	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/services/roles"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "submissions"

// MongoStore persists submissions in one collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(CollectionName)}
}

func NewMongoStoreFromCollection(c *mongo.Collection) *MongoStore {
	return &MongoStore{collection: c}
}

func (s *MongoStore) Save(ctx context.Context, sub *models.Submission) error {
	if sub.ID == "" {
		return errors.New("submission ID is required")
	}
	_, err := s.collection.InsertOne(ctx, sub)
	return err
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.Submission, error) {
	var sub models.Submission
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *MongoStore) List(ctx context.Context, params models.PaginationParams) ([]models.Submission, int64, error) {
	params.Normalize()
	filter := bson.M{}
	if params.Role != "" {
		filter["role"] = bson.M{"$regex": "^" + regexp.QuoteMeta(params.Role) + "$", "$options": "i"}
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: params.SortDirection()}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := s.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	submissions := []models.Submission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

// CountByRole groups submissions by predicted class.
func (s *MongoStore) CountByRole(ctx context.Context) ([]models.RoleCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$classId",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}

	cur, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.RoleCount{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Role = roles.Lookup(out[i].ClassID)
	}
	return out, nil
}
