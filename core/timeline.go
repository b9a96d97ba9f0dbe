package core

import (
	"fmt"

	"github.com/toplistapp/toplist-server/cmd/models"
)

type RecordEntryInput struct {
	UserID       uint
	MediaItemID  *uint
	Action       string
	Details      string
	ChangeReason string
	OldPosition  *int
	NewPosition  *int
}

// RecordEntry appends an audit entry on behalf of the request layer. It does
// not verify that the referenced media item still exists: historical entries
// may outlive their items.
func (c *Core) RecordEntry(in RecordEntryInput) *models.TimelineEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recordLocked(&models.TimelineEntry{
		UserID:       in.UserID,
		MediaItemID:  in.MediaItemID,
		Action:       in.Action,
		Details:      in.Details,
		ChangeReason: in.ChangeReason,
		OldPosition:  in.OldPosition,
		NewPosition:  in.NewPosition,
	})
}

// recordLocked stamps and stores an entry. Callers hold c.mu.
func (c *Core) recordLocked(e *models.TimelineEntry) *models.TimelineEntry {
	e.CreatedAt = c.now()
	c.store.CreateTimelineEntry(e)
	return e
}

// TimelineForUser returns the user's entries newest first, each enriched
// with its media item when that still resolves. A dangling reference just
// leaves the enrichment empty.
func (c *Core) TimelineForUser(userID uint) ([]models.TimelineEntryWithMedia, error) {
	entries, err := c.store.TimelineByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.TimelineEntryWithMedia, 0, len(entries))
	for _, entry := range entries {
		enriched := models.TimelineEntryWithMedia{TimelineEntry: *entry}
		if entry.MediaItemID != nil {
			if item, ok := c.store.GetMediaItem(*entry.MediaItemID); ok {
				enriched.MediaItem = item
			}
		}
		out = append(out, enriched)
	}
	return out, nil
}

// DeleteTimelineEntry is the one administrative escape hatch from the
// append-only timeline.
func (c *Core) DeleteTimelineEntry(id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.store.DeleteTimelineEntry(id) {
		return fmt.Errorf("timeline entry %d: %w", id, models.ErrNotFound)
	}
	return nil
}
