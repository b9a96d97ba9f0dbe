package models

import "time"

// Community groups users around an optional media-type focus. MemberCount is
// denormalized and maintained by the community manager.
type Community struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
	MediaType   string `gorm:"column:media_type;size:50" json:"mediaType,omitempty"`
	CreatorID   uint   `gorm:"column:creator_id;not null" json:"creatorId"`
	MemberCount int    `gorm:"column:member_count;not null;default:1" json:"memberCount"`
	Color       string `gorm:"column:color;size:20;not null" json:"color"`
}

type CommunityUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MediaType   *string `json:"mediaType"`
	Color       *string `json:"color"`
}

type CommunityMember struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommunityID uint      `gorm:"column:community_id;not null" json:"communityId"`
	UserID      uint      `gorm:"column:user_id;not null" json:"userId"`
	JoinedAt    time.Time `gorm:"column:joined_at" json:"joinedAt"`
}

type CommunityMemberWithUser struct {
	CommunityMember
	User *User `json:"user,omitempty"`
}
