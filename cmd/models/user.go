package models

const DefaultAvatarColor = "#6366F1"

// Connection statuses. Nothing transitions a connection past pending yet;
// the field exists so an accept/reject operation has somewhere to land.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
)

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"column:username;size:255;uniqueIndex;not null" json:"username"`
	Email       string `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	DisplayName string `gorm:"column:display_name;size:255;not null" json:"displayName"`
	Bio         string `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Location    string `gorm:"column:location;size:255" json:"location,omitempty"`
	AvatarColor string `gorm:"column:avatar_color;size:20;not null" json:"avatarColor"`
}

type Connection struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"column:user_id;not null" json:"userId"`
	ConnectedUserID uint   `gorm:"column:connected_user_id;not null" json:"connectedUserId"`
	Status          string `gorm:"column:status;size:50;not null" json:"status"`
}

type ConnectionUpdate struct {
	Status *string `json:"status"`
}

// MatchedUser is a discovery result: another user plus the overlap against
// the subject's list. SharedItems are the matched user's own entries, so the
// caller can show that user's story for each shared title.
type MatchedUser struct {
	User
	MatchCount  int         `json:"matchCount"`
	SharedItems []MediaItem `json:"sharedItems"`
}
