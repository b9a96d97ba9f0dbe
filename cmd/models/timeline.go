package models

import "time"

// Timeline actions.
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
	ActionMoved   = "moved"
	ActionUpdated = "updated"
)

func ValidTimelineAction(a string) bool {
	switch a {
	case ActionAdded, ActionRemoved, ActionMoved, ActionUpdated:
		return true
	}
	return false
}

// TimelineEntry is an append-only audit record of one list mutation.
// MediaItemID may point at a since-deleted item; readers tolerate that.
type TimelineEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null" json:"userId"`
	MediaItemID  *uint     `gorm:"column:media_item_id" json:"mediaItemId,omitempty"`
	Action       string    `gorm:"column:action;size:50;not null" json:"action"`
	Details      string    `gorm:"column:details;type:text;not null" json:"details"`
	ChangeReason string    `gorm:"column:change_reason;type:text" json:"changeReason,omitempty"`
	OldPosition  *int      `gorm:"column:old_position" json:"oldPosition,omitempty"`
	NewPosition  *int      `gorm:"column:new_position" json:"newPosition,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

type TimelineEntryWithMedia struct {
	TimelineEntry
	MediaItem *MediaItem `json:"mediaItem,omitempty"`
}
