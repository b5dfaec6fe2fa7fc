package mentorRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func mentorDoc(t *testing.T, m models.Mentor) bson.D {
	t.Helper()
	raw, err := bson.Marshal(m)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoMentorRepo_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sorted_by_seq", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		seeded := DefaultMentors()
		for i := range seeded {
			seeded[i].Seq = int64(i + 1)
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			mentorDoc(mt.T, seeded[0]),
			mentorDoc(mt.T, seeded[1]),
		))

		mentors, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, mentors, 2)
		assert.Equal(mt, seeded[0].Name, mentors[0].Name)
		assert.Equal(mt, seeded[0].Skills, mentors[0].Skills)
		assert.Equal(mt, int64(2), mentors[1].Seq)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		sort := evt.Command.Lookup("sort")
		assert.Equal(mt, "seq", sort.Document().Index(0).Key())
		assert.Equal(mt, int64(1), sort.Document().Lookup("seq").AsInt64())
	})

	mt.Run("find_error", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "find error"}))

		_, err := repo.List(context.Background())
		assert.Error(mt, err)
	})
}

func TestMongoMentorRepo_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		want := DefaultMentors()[0]
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, mentorDoc(mt.T, want)))

		got, err := repo.GetByID(context.Background(), want.ID)
		require.NoError(mt, err)
		assert.Equal(mt, want.Name, got.Name)
		assert.Equal(mt, want.HourlyRate, got.HourlyRate)
	})

	mt.Run("missing_is_not_found", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "99")
		var nf *models.NotFoundError
		require.True(mt, errors.As(err, &nf), "got %v", err)
		assert.Equal(mt, "99", nf.ID)
	})
}

func TestMongoMentorRepo_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns_next_seq", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{{Key: "seq", Value: int64(4)}}),
			mtest.CreateSuccessResponse(),
		)

		m := DefaultMentors()[0]
		m.ID = "5"
		require.NoError(mt, repo.Insert(context.Background(), &m))
		assert.Equal(mt, int64(5), m.Seq)
	})

	mt.Run("duplicate_id", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
		)

		m := DefaultMentors()[0]
		err := repo.Insert(context.Background(), &m)
		var verr *models.ValidationError
		assert.True(mt, errors.As(err, &verr), "got %v", err)
	})
}

func TestMongoMentorRepo_UpdateAvailability(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	a := models.NewAvailability("2026-10-21", models.AllSlots, "2026-10-19", time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC))

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, repo.UpdateAvailability(context.Background(), "1", a))
	})

	mt.Run("unknown_mentor", func(mt *mtest.T) {
		repo := NewMongoMentorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateAvailability(context.Background(), "99", a)
		var nf *models.NotFoundError
		assert.True(mt, errors.As(err, &nf), "got %v", err)
	})
}
