package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toplistapp/toplist-server/cmd/models"
	"github.com/toplistapp/toplist-server/core"
)

func createCommunity(t *testing.T, c *core.Core, creatorID uint, name string) *models.Community {
	t.Helper()
	cm, err := c.CreateCommunity(&models.Community{
		Name:        name,
		Description: "a place",
		CreatorID:   creatorID,
	})
	require.NoError(t, err)
	return cm
}

func TestCreateCommunityEnrollsCreator(t *testing.T) {
	c, _ := newTestCore(t)
	u := registerUser(t, c, "founder")

	cm := createCommunity(t, c, u.ID, "Vinyl Heads")
	assert.Equal(t, 1, cm.MemberCount)
	assert.Equal(t, models.DefaultAvatarColor, cm.Color)

	members, err := c.MembersForCommunity(cm.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, u.ID, members[0].UserID)
	require.NotNil(t, members[0].User)
	assert.Equal(t, "founder", members[0].User.Username)

	mine, err := c.CommunitiesForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, cm.ID, mine[0].ID)
}

func TestCreateCommunityCreatorMissing(t *testing.T) {
	c, _ := newTestCore(t)
	_, err := c.CreateCommunity(&models.Community{Name: "Ghosts", CreatorID: 42})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestJoinCommunity(t *testing.T) {
	c, _ := newTestCore(t)
	founder := registerUser(t, c, "founder")
	joiner := registerUser(t, c, "joiner")
	cm := createCommunity(t, c, founder.ID, "Book Club")

	member, err := c.JoinCommunity(cm.ID, joiner.ID)
	require.NoError(t, err)
	assert.Equal(t, joiner.ID, member.UserID)
	assert.False(t, member.JoinedAt.IsZero())

	got, err := c.GetCommunity(cm.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.MemberCount)

	_, err = c.JoinCommunity(cm.ID, joiner.ID)
	assert.ErrorIs(t, err, models.ErrDuplicate)

	got, _ = c.GetCommunity(cm.ID)
	assert.Equal(t, 2, got.MemberCount, "failed join must not bump the count")
}

func TestJoinCommunityMissingTargets(t *testing.T) {
	c, _ := newTestCore(t)
	u := registerUser(t, c, "ada")
	cm := createCommunity(t, c, u.ID, "Club")

	_, err := c.JoinCommunity(cm.ID, 99)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = c.JoinCommunity(99, u.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLeaveCommunity(t *testing.T) {
	c, _ := newTestCore(t)
	founder := registerUser(t, c, "founder")
	joiner := registerUser(t, c, "joiner")
	cm := createCommunity(t, c, founder.ID, "Club")

	_, err := c.JoinCommunity(cm.ID, joiner.ID)
	require.NoError(t, err)

	require.NoError(t, c.LeaveCommunity(cm.ID, joiner.ID))
	got, _ := c.GetCommunity(cm.ID)
	assert.Equal(t, 1, got.MemberCount)

	assert.ErrorIs(t, c.LeaveCommunity(cm.ID, joiner.ID), models.ErrNotFound)
	got, _ = c.GetCommunity(cm.ID)
	assert.Equal(t, 1, got.MemberCount)
}

func TestLeaveCommunityCountNeverNegative(t *testing.T) {
	c, st := newTestCore(t)
	founder := registerUser(t, c, "founder")
	cm := createCommunity(t, c, founder.ID, "Club")

	// Simulate a prior inconsistency: the count was already reset.
	require.True(t, st.SetCommunityMemberCount(cm.ID, 0))

	require.NoError(t, c.LeaveCommunity(cm.ID, founder.ID))
	got, _ := c.GetCommunity(cm.ID)
	assert.Zero(t, got.MemberCount)
}

func TestUpdateCommunityMergesGivenFields(t *testing.T) {
	c, _ := newTestCore(t)
	u := registerUser(t, c, "founder")
	cm := createCommunity(t, c, u.ID, "Old Name")

	name := "New Name"
	updated, err := c.UpdateCommunity(cm.ID, models.CommunityUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "a place", updated.Description)

	_, err = c.UpdateCommunity(99, models.CommunityUpdate{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteCommunityCascadesMembers(t *testing.T) {
	c, _ := newTestCore(t)
	founder := registerUser(t, c, "founder")
	joiner := registerUser(t, c, "joiner")
	cm := createCommunity(t, c, founder.ID, "Club")
	_, err := c.JoinCommunity(cm.ID, joiner.ID)
	require.NoError(t, err)

	require.NoError(t, c.DeleteCommunity(cm.ID))

	_, err = c.GetCommunity(cm.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	members, err := c.MembersForCommunity(cm.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	mine, err := c.CommunitiesForUser(joiner.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	assert.ErrorIs(t, c.DeleteCommunity(cm.ID), models.ErrNotFound)
}
