package core

import (
	"fmt"

	"github.com/toplistapp/toplist-server/cmd/models"
)

type AddMediaItemInput struct {
	UserID       uint
	Title        string
	Creator      string
	MediaType    string
	Story        string
	Position     int
	ChangeReason string
}

// AddMediaItem gates a creation against the two list invariants: at most
// 10 items per owner, no two items on the same position. It does not
// renumber anything; the caller picks a free slot. A timeline entry is
// recorded as part of the same guarded sequence.
func (c *Core) AddMediaItem(in AddMediaItemInput) (*models.MediaItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.GetUser(in.UserID); !ok {
		return nil, fmt.Errorf("user %d: %w", in.UserID, models.ErrNotFound)
	}
	existing, err := c.store.MediaItemsByUser(in.UserID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= models.MaxListItems {
		return nil, fmt.Errorf("user %d already has %d items: %w", in.UserID, models.MaxListItems, models.ErrListFull)
	}
	for _, it := range existing {
		if it.Position == in.Position {
			return nil, fmt.Errorf("position %d: %w", in.Position, models.ErrPositionTaken)
		}
	}

	item := &models.MediaItem{
		UserID:    in.UserID,
		Title:     in.Title,
		Creator:   in.Creator,
		MediaType: in.MediaType,
		Story:     in.Story,
		Position:  in.Position,
	}
	if err := c.store.CreateMediaItem(item); err != nil {
		return nil, err
	}

	pos := item.Position
	c.recordLocked(&models.TimelineEntry{
		UserID:       item.UserID,
		MediaItemID:  &item.ID,
		Action:       models.ActionAdded,
		Details:      fmt.Sprintf("Added %s to position #%d", itemLabel(item), item.Position),
		ChangeReason: in.ChangeReason,
		NewPosition:  &pos,
	})
	return item, nil
}

// UpdateMediaItem merges the given fields into an existing item. The cap is
// a creation-time rule, but position uniqueness is re-checked whenever the
// update carries a position.
func (c *Core) UpdateMediaItem(id uint, upd models.MediaItemUpdate, changeReason string) (*models.MediaItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.store.GetMediaItem(id)
	if !ok {
		return nil, fmt.Errorf("media item %d: %w", id, models.ErrNotFound)
	}

	moved := upd.Position != nil && *upd.Position != existing.Position
	if moved {
		siblings, err := c.store.MediaItemsByUser(existing.UserID)
		if err != nil {
			return nil, err
		}
		for _, it := range siblings {
			if it.ID != id && it.Position == *upd.Position {
				return nil, fmt.Errorf("position %d: %w", *upd.Position, models.ErrPositionTaken)
			}
		}
	}

	updated, ok := c.store.UpdateMediaItem(id, upd)
	if !ok {
		return nil, fmt.Errorf("media item %d: %w", id, models.ErrNotFound)
	}

	entry := &models.TimelineEntry{
		UserID:       updated.UserID,
		MediaItemID:  &updated.ID,
		ChangeReason: changeReason,
	}
	if moved {
		oldPos, newPos := existing.Position, updated.Position
		entry.Action = models.ActionMoved
		entry.Details = fmt.Sprintf("Moved %s from position #%d to position #%d", itemLabel(updated), oldPos, newPos)
		entry.OldPosition = &oldPos
		entry.NewPosition = &newPos
	} else {
		entry.Action = models.ActionUpdated
		entry.Details = fmt.Sprintf("Updated %s", itemLabel(updated))
	}
	c.recordLocked(entry)
	return updated, nil
}

// DeleteMediaItem removes the item entirely. Comments, likes and timeline
// entries that reference it stay behind as tolerated orphans.
func (c *Core) DeleteMediaItem(id uint, changeReason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.store.GetMediaItem(id)
	if !ok {
		return fmt.Errorf("media item %d: %w", id, models.ErrNotFound)
	}
	c.store.DeleteMediaItem(id)

	pos := item.Position
	c.recordLocked(&models.TimelineEntry{
		UserID:       item.UserID,
		MediaItemID:  &item.ID,
		Action:       models.ActionRemoved,
		Details:      fmt.Sprintf("Removed %s from position #%d", itemLabel(item), item.Position),
		ChangeReason: changeReason,
		OldPosition:  &pos,
	})
	return nil
}

// MediaItemsForUser returns the owner's list sorted by position.
func (c *Core) MediaItemsForUser(userID uint) ([]*models.MediaItem, error) {
	return c.store.MediaItemsByUser(userID)
}

func itemLabel(m *models.MediaItem) string {
	if m.Creator != "" {
		return fmt.Sprintf("'%s' by %s", m.Title, m.Creator)
	}
	return fmt.Sprintf("'%s'", m.Title)
}
