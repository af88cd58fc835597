package submission

import (
	"context"
	"testing"
	"time"

	"Backend-Career-Advisor/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "CareerAdvisorDB." + CollectionName

	mt.Run("save", func(mt *mtest.T) {
		store := NewMongoStoreFromCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.Save(context.Background(), newSubmission("abc", 3, time.Now()))
		assert.NoError(mt, err)
	})

	mt.Run("save requires id", func(mt *mtest.T) {
		store := NewMongoStoreFromCollection(mt.Coll)
		assert.Error(mt, store.Save(context.Background(), &models.Submission{}))
	})

	mt.Run("get", func(mt *mtest.T) {
		store := NewMongoStoreFromCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "abc"},
			{Key: "classId", Value: 3},
			{Key: "role", Value: "Business Analyst"},
			{Key: "vector", Value: bson.A{1, 2, 3}},
		}))

		got, err := store.Get(context.Background(), "abc")
		require.NoError(mt, err)
		assert.Equal(mt, "abc", got.ID)
		assert.Equal(mt, 3, got.ClassID)
		assert.Equal(mt, models.FeatureVector{1, 2, 3}, got.Vector)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		store := NewMongoStoreFromCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := store.Get(context.Background(), "nope")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		store := NewMongoStoreFromCollection(mt.Coll)
		count := mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(7)}})
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "b"}, {Key: "classId", Value: 1}},
			bson.D{{Key: "_id", Value: "a"}, {Key: "classId", Value: 2}},
		)
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(count, first, end)

		got, total, err := store.List(context.Background(), models.PaginationParams{Page: 1, Limit: 2, Role: "API Specialist"})
		require.NoError(mt, err)
		assert.EqualValues(mt, 7, total)
		require.Len(mt, got, 2)
		assert.Equal(mt, "b", got[0].ID)
	})

	mt.Run("count by role", func(mt *mtest.T) {
		store := NewMongoStoreFromCollection(mt.Coll)
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 13}, {Key: "count", Value: int64(4)}},
			bson.D{{Key: "_id", Value: 42}, {Key: "count", Value: int64(1)}},
		)
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, end)

		got, err := store.CountByRole(context.Background())
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, models.RoleCount{ClassID: 13, Role: "Software Developer", Count: 4}, got[0])
		assert.Equal(mt, "Unknown Role", got[1].Role)
	})

	mt.Run("command error", func(mt *mtest.T) {
		store := NewMongoStoreFromCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "duplicate key"}))

		err := store.Save(context.Background(), newSubmission("abc", 3, time.Now()))
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})
}
