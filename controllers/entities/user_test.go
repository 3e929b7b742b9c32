package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	config.NewLoggerService()
	config.DataBase = db
}

func TestUserLoginEntityExcludesAuditFields(t *testing.T) {
	user := &models.User{
		ID:           1,
		UID:          "uid-1",
		Email:        "a@x.com",
		Username:     "alice",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Now(),
		LastLogin:    null.TimeFrom(time.Now()),
		IsActive:     true,
	}

	entity, err := UserToLoginEntity(user)
	require.NoError(t, err)

	raw, err := json.Marshal(entity)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "a@x.com", fields["email"])
	assert.Equal(t, "alice", fields["username"])

	for _, excluded := range []string{"created_at", "last_login", "is_active", "password", "password_hash"} {
		_, present := fields[excluded]
		assert.Falsef(t, present, "login entity must not carry %q", excluded)
	}
}

func TestUserProfileEntityNeverCarriesHash(t *testing.T) {
	user := &models.User{
		ID:           1,
		UID:          "uid-1",
		Email:        "a@x.com",
		Username:     "alice",
		PasswordHash: "$2a$10$secret",
		IsActive:     true,
	}

	entity, err := UserToProfileEntity(user)
	require.NoError(t, err)

	raw, err := json.Marshal(entity)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	_, present := fields["password_hash"]
	assert.False(t, present)
	assert.NotContains(t, string(raw), "$2a$10$secret")
}

func TestUserToLoginEntityMissingFields(t *testing.T) {
	_, err := UserToLoginEntity(nil)
	assert.ErrorIs(t, err, models.ErrSerialization)

	_, err = UserToLoginEntity(&models.User{ID: 1, Username: "alice"})
	assert.ErrorIs(t, err, models.ErrSerialization)
}

// Round-trip: persisted rows serialize back with the fields they were
// created with.
func TestUserRoundTrip(t *testing.T) {
	setupTestDB(t)

	user := &models.User{
		Email:        "a@x.com",
		Username:     "alice",
		PasswordHash: "$2a$10$secret",
		IsActive:     true,
	}
	require.NoError(t, models.CreateUser(user))

	found, err := models.FindUserByID(user.ID)
	require.NoError(t, err)

	entity, err := UserToLoginEntity(found)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", entity.Email)
	assert.Equal(t, "alice", entity.Username)
}
