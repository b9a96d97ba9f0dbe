package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toplistapp/toplist-server/cmd/models"
	"github.com/toplistapp/toplist-server/core"
)

func TestRecordEntryStampsAndEnriches(t *testing.T) {
	c, _ := newTestCore(t)
	u := registerUser(t, c, "ada")
	item := addItem(t, c, u.ID, "Song", 1)

	pos := 4
	entry := c.RecordEntry(core.RecordEntryInput{
		UserID:      u.ID,
		MediaItemID: &item.ID,
		Action:      models.ActionMoved,
		Details:     "Moved Song to position #4",
		NewPosition: &pos,
	})
	require.NotZero(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	entries, err := c.TimelineForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActionMoved, entries[0].Action)
	require.NotNil(t, entries[0].MediaItem)
	assert.Equal(t, item.ID, entries[0].MediaItem.ID)
}

func TestRecordEntryToleratesUnknownMediaItem(t *testing.T) {
	c, _ := newTestCore(t)
	u := registerUser(t, c, "ada")

	missing := uint(99)
	entry := c.RecordEntry(core.RecordEntryInput{
		UserID:      u.ID,
		MediaItemID: &missing,
		Action:      models.ActionAdded,
		Details:     "imported from elsewhere",
	})
	require.NotZero(t, entry.ID)

	entries, err := c.TimelineForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].MediaItem)
}

func TestTimelineSurvivesItemDeletion(t *testing.T) {
	c, _ := newTestCore(t)
	u := registerUser(t, c, "ada")
	item := addItem(t, c, u.ID, "Song", 1)

	require.NoError(t, c.DeleteMediaItem(item.ID, ""))

	entries, err := c.TimelineForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.NotNil(t, e.MediaItemID)
		assert.Equal(t, item.ID, *e.MediaItemID)
		assert.Nil(t, e.MediaItem, "deleted item must not resolve")
	}
}

func TestDeleteTimelineEntry(t *testing.T) {
	c, _ := newTestCore(t)
	u := registerUser(t, c, "ada")
	addItem(t, c, u.ID, "Song", 1)

	entries, err := c.TimelineForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, c.DeleteTimelineEntry(entries[0].ID))
	remaining, err := c.TimelineForUser(u.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	assert.ErrorIs(t, c.DeleteTimelineEntry(entries[0].ID), models.ErrNotFound)
}
