package store

import "github.com/toplistapp/toplist-server/cmd/models"

// Store holds every domain entity keyed by a surrogate id that is assigned at
// creation time and never reused. It is plain CRUD plus lookups: business
// rules (the 10-item cap, position uniqueness, duplicate likes) belong to the
// core, not here.
//
// Listing methods return entities in insertion order, except media items
// (position ascending) and timeline entries (newest first), and report
// backend query failures through their error result. Returned values are
// copies; mutating them does not touch stored state.
type Store interface {
	// Users
	CreateUser(u *models.User) error
	GetUser(id uint) (*models.User, bool)
	GetUserByUsername(username string) (*models.User, bool)
	GetUserByEmail(email string) (*models.User, bool)
	AllUsers() ([]*models.User, error)

	// Media items
	CreateMediaItem(m *models.MediaItem) error
	GetMediaItem(id uint) (*models.MediaItem, bool)
	MediaItemsByUser(userID uint) ([]*models.MediaItem, error)
	AllMediaItems() ([]*models.MediaItem, error)
	UpdateMediaItem(id uint, upd models.MediaItemUpdate) (*models.MediaItem, bool)
	// SetMediaItemCounts writes the server-maintained counters. It is not
	// reachable from any request payload.
	SetMediaItemCounts(id uint, likeCount, commentCount int) bool
	DeleteMediaItem(id uint) bool

	// Comments
	CreateComment(c *models.Comment) error
	GetComment(id uint) (*models.Comment, bool)
	CommentsByMediaItem(mediaItemID uint) ([]*models.Comment, error)
	DeleteComment(id uint) bool

	// Likes
	CreateLike(l *models.Like) error
	GetLike(userID, mediaItemID uint) (*models.Like, bool)
	LikesByMediaItem(mediaItemID uint) ([]*models.Like, error)
	DeleteLike(userID, mediaItemID uint) bool

	// Connections
	CreateConnection(c *models.Connection) error
	GetConnection(id uint) (*models.Connection, bool)
	ConnectionsByUser(userID uint) ([]*models.Connection, error)
	UpdateConnection(id uint, upd models.ConnectionUpdate) (*models.Connection, bool)

	// Communities
	CreateCommunity(c *models.Community) error
	GetCommunity(id uint) (*models.Community, bool)
	AllCommunities() ([]*models.Community, error)
	CommunitiesByUser(userID uint) ([]*models.Community, error)
	UpdateCommunity(id uint, upd models.CommunityUpdate) (*models.Community, bool)
	SetCommunityMemberCount(id uint, memberCount int) bool
	DeleteCommunity(id uint) bool

	// Community members
	CreateCommunityMember(m *models.CommunityMember) error
	GetCommunityMember(communityID, userID uint) (*models.CommunityMember, bool)
	MembersByCommunity(communityID uint) ([]*models.CommunityMember, error)
	DeleteCommunityMember(id uint) bool
	DeleteMembersByCommunity(communityID uint) int

	// Timeline
	CreateTimelineEntry(e *models.TimelineEntry) error
	GetTimelineEntry(id uint) (*models.TimelineEntry, bool)
	TimelineByUser(userID uint) ([]*models.TimelineEntry, error)
	DeleteTimelineEntry(id uint) bool
}
