package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carpoolhub/internal/repository"
)

func TestUpdateAccount(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	auth := NewAuthService(userRepo)
	posts := NewPostService(postRepo, userRepo)
	accounts := NewAccountService(userRepo)

	user := registerTestUser(t, auth, "alice")
	_, err := posts.Create(CreatePostInput{UserID: user.ID, Location: "Downtown"})
	require.NoError(t, err)

	updated, err := accounts.Update(UpdateAccountInput{
		UserID:   user.ID,
		Username: "alicia",
		Email:    "alicia@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Username)
	assert.Equal(t, "alicia@example.com", updated.Email)

	// Blank password keeps the old credential.
	loggedIn, err := auth.Login(LoginInput{Username: "alicia", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	// Posts keep the snapshot taken at creation time.
	all, err := posts.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alice", all[0].Username)
	assert.Equal(t, "alice@example.com", all[0].Email)
}

func TestUpdateAccountPassword(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo)
	accounts := NewAccountService(userRepo)

	user := registerTestUser(t, auth, "alice")

	_, err := accounts.Update(UpdateAccountInput{
		UserID:   user.ID,
		Username: "alice",
		Password: "newpassword456",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, err = auth.Login(LoginInput{Username: "alice", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = auth.Login(LoginInput{Username: "alice", Password: "newpassword456"})
	assert.NoError(t, err)
}

func TestUpdateAccountConflicts(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo)
	accounts := NewAccountService(userRepo)

	registerTestUser(t, auth, "alice")
	bobby := registerTestUser(t, auth, "bobby")

	_, err := accounts.Update(UpdateAccountInput{
		UserID:   bobby.ID,
		Username: "alice",
		Email:    "bobby@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = accounts.Update(UpdateAccountInput{
		UserID:   bobby.ID,
		Username: "bobby",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	// Re-submitting the current values is not a conflict.
	_, err = accounts.Update(UpdateAccountInput{
		UserID:   bobby.ID,
		Username: "bobby",
		Email:    "bobby@example.com",
	})
	assert.NoError(t, err)
}

func TestUpdateAccountValidation(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo)
	accounts := NewAccountService(userRepo)

	user := registerTestUser(t, auth, "alice")

	_, err := accounts.Update(UpdateAccountInput{
		UserID:   user.ID,
		Username: "al",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = accounts.Update(UpdateAccountInput{
		UserID:   user.ID,
		Username: "alice",
		Password: "short",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = accounts.Update(UpdateAccountInput{
		UserID:   999,
		Username: "ghost",
		Email:    "ghost@example.com",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
