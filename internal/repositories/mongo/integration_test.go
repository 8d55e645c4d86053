package mongo_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/jobboard/config"
	"github.com/yoockh/jobboard/internal/models"
	mongorepo "github.com/yoockh/jobboard/internal/repositories/mongo"
	"github.com/yoockh/jobboard/internal/utils"
)

func TestLiveSessionRepo(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx := context.Background()
	cfg := config.Config{
		MongoURI: uri,
		MongoDB:  "jobboard_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
	}

	require.NoError(t, config.InitMongo(ctx, cfg))
	db := config.MongoDatabase(cfg)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = config.MongoClient.Disconnect(context.Background())
	})
	require.NoError(t, config.EnsureMongoIndexes(ctx, cfg))

	repo := mongorepo.NewSessionRepo(db)

	live := &models.Session{
		SessionID: "live",
		UserID:    "u1",
		User:      models.User{ID: "u1", Email: "jane@example.com", Name: "Jane", Role: models.RoleJobSeeker},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, &models.Session{SessionID: "dead", UserID: "u1", ExpiresAt: time.Now().Add(-time.Second)}))

	got, err := repo.GetBySessionID(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, models.RoleJobSeeker, got.User.Role)

	_, err = repo.GetBySessionID(ctx, "dead")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	assert.ErrorIs(t, repo.Create(ctx, &models.Session{SessionID: "live", ExpiresAt: time.Now().Add(time.Hour)}), utils.ErrConflict)

	require.NoError(t, repo.Delete(ctx, "live"))
	_, err = repo.GetBySessionID(ctx, "live")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
