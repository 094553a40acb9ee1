package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"carpoolhub/internal/model"
	"carpoolhub/internal/platform/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestCreateForUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	owner := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(owner))

	post := &model.Post{Username: "alice", Email: "alice@example.com", Location: "Downtown"}
	require.NoError(t, posts.CreateForUser(post, owner.ID))
	assert.NotZero(t, post.ID)

	reloaded, err := users.GetByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.PostCount)

	count, err := posts.CountByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// A missing owner must roll the whole transaction back: no post row and no
// counter change may survive.
func TestCreateForUserMissingOwner(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)

	post := &model.Post{Username: "ghost", Email: "ghost@example.com", Location: "Nowhere"}
	err := posts.CreateForUser(post, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	all, err := posts.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByUsernameMissing(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	user, err := users.GetByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = users.GetByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
