package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/yoockh/jobboard/internal/models"
	mongorepo "github.com/yoockh/jobboard/internal/repositories/mongo"
	"github.com/yoockh/jobboard/internal/utils"
)

const sessionsNS = mtest.TestDb + "." + mongorepo.SessionsCollection

func sessionDoc(id string, expiresAt time.Time) bson.D {
	return bson.D{
		{Key: "session_id", Value: id},
		{Key: "user_id", Value: "u1"},
		{Key: "user", Value: bson.D{
			{Key: "id", Value: "u1"},
			{Key: "email", Value: "jane@example.com"},
			{Key: "name", Value: "Jane"},
			{Key: "role", Value: string(models.RoleJobSeeker)},
		}},
		{Key: "created_at", Value: expiresAt.Add(-time.Hour)},
		{Key: "expires_at", Value: expiresAt},
	}
}

func TestSessionRepoMock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get live session", func(mt *mtest.T) {
		repo := mongorepo.NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, sessionsNS, mtest.FirstBatch, sessionDoc("s1", time.Now().Add(time.Hour))))

		s, err := repo.GetBySessionID(ctx, "s1")
		require.NoError(mt, err)
		assert.Equal(mt, "s1", s.SessionID)
		assert.Equal(mt, models.RoleJobSeeker, s.User.Role)
		assert.Equal(mt, "jane@example.com", s.User.Email)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, mongorepo.SessionsCollection, evt.Command.Lookup("find").StringValue())
		assert.Equal(mt, "s1", evt.Command.Lookup("filter", "session_id").StringValue())
	})

	mt.Run("missing session", func(mt *mtest.T) {
		repo := mongorepo.NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, sessionsNS, mtest.FirstBatch))

		_, err := repo.GetBySessionID(ctx, "nope")
		assert.ErrorIs(mt, err, utils.ErrNotFound)
	})

	mt.Run("expired session not yet removed by ttl", func(mt *mtest.T) {
		repo := mongorepo.NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, sessionsNS, mtest.FirstBatch, sessionDoc("old", time.Now().Add(-time.Second))))

		_, err := repo.GetBySessionID(ctx, "old")
		assert.ErrorIs(mt, err, utils.ErrNotFound)
	})

	mt.Run("create stamps created_at", func(mt *mtest.T) {
		repo := mongorepo.NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		s := &models.Session{SessionID: "s2", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(mt, repo.Create(ctx, s))
		assert.False(mt, s.CreatedAt.IsZero())

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
	})

	mt.Run("duplicate session id", func(mt *mtest.T) {
		repo := mongorepo.NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.sessions index: uniq_session_id",
		}))

		err := repo.Create(ctx, &models.Session{SessionID: "s1", ExpiresAt: time.Now().Add(time.Hour)})
		assert.ErrorIs(mt, err, utils.ErrConflict)
	})

	mt.Run("delete by session id", func(mt *mtest.T) {
		repo := mongorepo.NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, repo.Delete(ctx, "s1"))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "delete", evt.CommandName)
		assert.Equal(mt, "s1", evt.Command.Lookup("deletes", "0", "q", "session_id").StringValue())
	})

	mt.Run("server errors pass through", func(mt *mtest.T) {
		repo := mongorepo.NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on test",
		}))

		_, err := repo.GetBySessionID(ctx, "s1")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, utils.ErrNotFound)
	})
}
