package models

import "time"

// MaxListItems caps every user's ranked list.
const MaxListItems = 10

var mediaTypes = map[string]bool{
	"song":    true,
	"book":    true,
	"movie":   true,
	"show":    true,
	"youtube": true,
	"game":    true,
	"art":     true,
}

func ValidMediaType(t string) bool {
	return mediaTypes[t]
}

// MediaItem is one ranked entry in a user's top-10 list. LikeCount and
// CommentCount are server-maintained: they are only ever written by the
// engagement aggregator, never from a request payload.
type MediaItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"column:user_id;not null" json:"userId"`
	Title        string `gorm:"column:title;size:255;not null" json:"title"`
	Creator      string `gorm:"column:creator;size:255" json:"creator,omitempty"`
	MediaType    string `gorm:"column:media_type;size:50;not null" json:"mediaType"`
	Story        string `gorm:"column:story;type:text;not null" json:"story"`
	Position     int    `gorm:"column:position;not null" json:"position"`
	LikeCount    int    `gorm:"column:like_count;not null;default:0" json:"likeCount"`
	CommentCount int    `gorm:"column:comment_count;not null;default:0" json:"commentCount"`
}

// MediaItemUpdate carries the mutable fields of a MediaItem. Counters are
// deliberately absent so a partial update can never touch them.
type MediaItemUpdate struct {
	Title     *string `json:"title"`
	Creator   *string `json:"creator"`
	MediaType *string `json:"mediaType"`
	Story     *string `json:"story"`
	Position  *int    `json:"position"`
}

type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null" json:"userId"`
	MediaItemID uint      `gorm:"column:media_item_id;not null" json:"mediaItemId"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

type CommentWithUser struct {
	Comment
	User *User `json:"user,omitempty"`
}

type Like struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"column:user_id;not null" json:"userId"`
	MediaItemID uint `gorm:"column:media_item_id;not null" json:"mediaItemId"`
}

// TrendingItem is the derived trending view; EngagementScore is never stored.
type TrendingItem struct {
	MediaItem
	EngagementScore int `json:"engagementScore"`
}
