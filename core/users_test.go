package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toplistapp/toplist-server/cmd/models"
)

func TestRegisterUserDefaultsAvatarColor(t *testing.T) {
	c, _ := newTestCore(t)

	u, err := c.RegisterUser(&models.User{Username: "ada", Email: "ada@example.com", DisplayName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAvatarColor, u.AvatarColor)

	colored, err := c.RegisterUser(&models.User{
		Username:    "grace",
		Email:       "grace@example.com",
		DisplayName: "Grace",
		AvatarColor: "#10B981",
	})
	require.NoError(t, err)
	assert.Equal(t, "#10B981", colored.AvatarColor)
}

func TestRegisterUserRequiredFields(t *testing.T) {
	c, _ := newTestCore(t)

	for _, u := range []*models.User{
		{Email: "a@example.com", DisplayName: "A"},
		{Username: "a", DisplayName: "A"},
		{Username: "a", Email: "a@example.com"},
	} {
		_, err := c.RegisterUser(u)
		assert.ErrorIs(t, err, models.ErrInvalid)
	}
}

func TestRegisterUserUniqueness(t *testing.T) {
	c, _ := newTestCore(t)
	registerUser(t, c, "ada")

	_, err := c.RegisterUser(&models.User{Username: "ada", Email: "other@example.com", DisplayName: "Other"})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	_, err = c.RegisterUser(&models.User{Username: "other", Email: "ada@example.com", DisplayName: "Other"})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestGetUserMissing(t *testing.T) {
	c, _ := newTestCore(t)
	_, err := c.GetUser(99)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateConnection(t *testing.T) {
	c, _ := newTestCore(t)
	a := registerUser(t, c, "ada")
	b := registerUser(t, c, "bob")

	conn, err := c.CreateConnection(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionPending, conn.Status)

	_, err = c.CreateConnection(a.ID, 99)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = c.CreateConnection(99, b.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConnectionsForUserBothDirections(t *testing.T) {
	c, _ := newTestCore(t)
	a := registerUser(t, c, "ada")
	b := registerUser(t, c, "bob")
	d := registerUser(t, c, "dan")

	_, err := c.CreateConnection(a.ID, b.ID)
	require.NoError(t, err)
	_, err = c.CreateConnection(d.ID, a.ID)
	require.NoError(t, err)

	forA, err := c.ConnectionsForUser(a.ID)
	require.NoError(t, err)
	assert.Len(t, forA, 2)

	forB, err := c.ConnectionsForUser(b.ID)
	require.NoError(t, err)
	assert.Len(t, forB, 1)

	forNobody, err := c.ConnectionsForUser(99)
	require.NoError(t, err)
	assert.Empty(t, forNobody)
}
