package store

import (
	"gorm.io/gorm"

	"github.com/toplistapp/toplist-server/cmd/models"
)

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*GormStore)(nil)
)

// GormStore is the durable Store backend. Deployments that outgrow the
// in-memory reference point STORE_BACKEND at postgres and get the same
// contract on top of gorm. Single-row read misses and their query failures
// both report as absent, mirroring how the memory backend signals
// not-found; listing methods surface query failures as errors.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Tables lists every persisted entity for AutoMigrate.
func Tables() []interface{} {
	return []interface{}{
		&models.User{},
		&models.MediaItem{},
		&models.Comment{},
		&models.Like{},
		&models.Connection{},
		&models.Community{},
		&models.CommunityMember{},
		&models.TimelineEntry{},
	}
}

// Users

func (s *GormStore) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *GormStore) GetUser(id uint) (*models.User, bool) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, false
	}
	return &u, true
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, bool) {
	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, false
	}
	return &u, true
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, bool) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, false
	}
	return &u, true
}

func (s *GormStore) AllUsers() ([]*models.User, error) {
	var users []*models.User
	if err := s.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Media items

func (s *GormStore) CreateMediaItem(m *models.MediaItem) error {
	return s.db.Create(m).Error
}

func (s *GormStore) GetMediaItem(id uint) (*models.MediaItem, bool) {
	var m models.MediaItem
	if err := s.db.First(&m, id).Error; err != nil {
		return nil, false
	}
	return &m, true
}

func (s *GormStore) MediaItemsByUser(userID uint) ([]*models.MediaItem, error) {
	var items []*models.MediaItem
	if err := s.db.Where("user_id = ?", userID).Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) AllMediaItems() ([]*models.MediaItem, error) {
	var items []*models.MediaItem
	if err := s.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) UpdateMediaItem(id uint, upd models.MediaItemUpdate) (*models.MediaItem, bool) {
	var m models.MediaItem
	if err := s.db.First(&m, id).Error; err != nil {
		return nil, false
	}
	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Creator != nil {
		fields["creator"] = *upd.Creator
	}
	if upd.MediaType != nil {
		fields["media_type"] = *upd.MediaType
	}
	if upd.Story != nil {
		fields["story"] = *upd.Story
	}
	if upd.Position != nil {
		fields["position"] = *upd.Position
	}
	if len(fields) > 0 {
		if err := s.db.Model(&m).UpdateColumns(fields).Error; err != nil {
			return nil, false
		}
	}
	return &m, true
}

func (s *GormStore) SetMediaItemCounts(id uint, likeCount, commentCount int) bool {
	res := s.db.Model(&models.MediaItem{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"like_count":    likeCount,
		"comment_count": commentCount,
	})
	return res.Error == nil && res.RowsAffected > 0
}

func (s *GormStore) DeleteMediaItem(id uint) bool {
	res := s.db.Delete(&models.MediaItem{}, id)
	return res.Error == nil && res.RowsAffected > 0
}

// Comments

func (s *GormStore) CreateComment(c *models.Comment) error {
	return s.db.Create(c).Error
}

func (s *GormStore) GetComment(id uint) (*models.Comment, bool) {
	var c models.Comment
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, false
	}
	return &c, true
}

func (s *GormStore) CommentsByMediaItem(mediaItemID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := s.db.Where("media_item_id = ?", mediaItemID).Order("id asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) DeleteComment(id uint) bool {
	res := s.db.Delete(&models.Comment{}, id)
	return res.Error == nil && res.RowsAffected > 0
}

// Likes

func (s *GormStore) CreateLike(l *models.Like) error {
	return s.db.Create(l).Error
}

func (s *GormStore) GetLike(userID, mediaItemID uint) (*models.Like, bool) {
	var l models.Like
	if err := s.db.Where("user_id = ? AND media_item_id = ?", userID, mediaItemID).First(&l).Error; err != nil {
		return nil, false
	}
	return &l, true
}

func (s *GormStore) LikesByMediaItem(mediaItemID uint) ([]*models.Like, error) {
	var likes []*models.Like
	if err := s.db.Where("media_item_id = ?", mediaItemID).Order("id asc").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *GormStore) DeleteLike(userID, mediaItemID uint) bool {
	res := s.db.Where("user_id = ? AND media_item_id = ?", userID, mediaItemID).Delete(&models.Like{})
	return res.Error == nil && res.RowsAffected > 0
}

// Connections

func (s *GormStore) CreateConnection(c *models.Connection) error {
	return s.db.Create(c).Error
}

func (s *GormStore) GetConnection(id uint) (*models.Connection, bool) {
	var c models.Connection
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, false
	}
	return &c, true
}

func (s *GormStore) ConnectionsByUser(userID uint) ([]*models.Connection, error) {
	var conns []*models.Connection
	if err := s.db.Where("user_id = ? OR connected_user_id = ?", userID, userID).Order("id asc").Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}

func (s *GormStore) UpdateConnection(id uint, upd models.ConnectionUpdate) (*models.Connection, bool) {
	var c models.Connection
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, false
	}
	if upd.Status != nil {
		if err := s.db.Model(&c).UpdateColumn("status", *upd.Status).Error; err != nil {
			return nil, false
		}
	}
	return &c, true
}

// Communities

func (s *GormStore) CreateCommunity(c *models.Community) error {
	return s.db.Create(c).Error
}

func (s *GormStore) GetCommunity(id uint) (*models.Community, bool) {
	var c models.Community
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, false
	}
	return &c, true
}

func (s *GormStore) AllCommunities() ([]*models.Community, error) {
	var communities []*models.Community
	if err := s.db.Order("id asc").Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

func (s *GormStore) CommunitiesByUser(userID uint) ([]*models.Community, error) {
	var communities []*models.Community
	err := s.db.Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Order("community_members.id asc").
		Find(&communities).Error
	if err != nil {
		return nil, err
	}
	return communities, nil
}

func (s *GormStore) UpdateCommunity(id uint, upd models.CommunityUpdate) (*models.Community, bool) {
	var c models.Community
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, false
	}
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.MediaType != nil {
		fields["media_type"] = *upd.MediaType
	}
	if upd.Color != nil {
		fields["color"] = *upd.Color
	}
	if len(fields) > 0 {
		if err := s.db.Model(&c).UpdateColumns(fields).Error; err != nil {
			return nil, false
		}
	}
	return &c, true
}

func (s *GormStore) SetCommunityMemberCount(id uint, memberCount int) bool {
	res := s.db.Model(&models.Community{}).Where("id = ?", id).UpdateColumn("member_count", memberCount)
	return res.Error == nil && res.RowsAffected > 0
}

func (s *GormStore) DeleteCommunity(id uint) bool {
	res := s.db.Delete(&models.Community{}, id)
	return res.Error == nil && res.RowsAffected > 0
}

// Community members

func (s *GormStore) CreateCommunityMember(m *models.CommunityMember) error {
	return s.db.Create(m).Error
}

func (s *GormStore) GetCommunityMember(communityID, userID uint) (*models.CommunityMember, bool) {
	var m models.CommunityMember
	if err := s.db.Where("community_id = ? AND user_id = ?", communityID, userID).First(&m).Error; err != nil {
		return nil, false
	}
	return &m, true
}

func (s *GormStore) MembersByCommunity(communityID uint) ([]*models.CommunityMember, error) {
	var members []*models.CommunityMember
	if err := s.db.Where("community_id = ?", communityID).Order("id asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *GormStore) DeleteCommunityMember(id uint) bool {
	res := s.db.Delete(&models.CommunityMember{}, id)
	return res.Error == nil && res.RowsAffected > 0
}

func (s *GormStore) DeleteMembersByCommunity(communityID uint) int {
	res := s.db.Where("community_id = ?", communityID).Delete(&models.CommunityMember{})
	if res.Error != nil {
		return 0
	}
	return int(res.RowsAffected)
}

// Timeline

func (s *GormStore) CreateTimelineEntry(e *models.TimelineEntry) error {
	return s.db.Create(e).Error
}

func (s *GormStore) GetTimelineEntry(id uint) (*models.TimelineEntry, bool) {
	var e models.TimelineEntry
	if err := s.db.First(&e, id).Error; err != nil {
		return nil, false
	}
	return &e, true
}

func (s *GormStore) TimelineByUser(userID uint) ([]*models.TimelineEntry, error) {
	var entries []*models.TimelineEntry
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) DeleteTimelineEntry(id uint) bool {
	res := s.db.Delete(&models.TimelineEntry{}, id)
	return res.Error == nil && res.RowsAffected > 0
}
