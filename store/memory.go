package store

import (
	"sort"
	"sync"

	"github.com/toplistapp/toplist-server/cmd/models"
)

// MemoryStore is the reference Store backend: plain maps guarded by a single
// RWMutex, with a monotonically increasing id counter per entity type. Ids
// are never reused, so ascending-id iteration equals insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	users           map[uint]models.User
	mediaItems      map[uint]models.MediaItem
	comments        map[uint]models.Comment
	likes           map[uint]models.Like
	connections     map[uint]models.Connection
	communities     map[uint]models.Community
	members         map[uint]models.CommunityMember
	timelineEntries map[uint]models.TimelineEntry

	nextUserID       uint
	nextMediaItemID  uint
	nextCommentID    uint
	nextLikeID       uint
	nextConnectionID uint
	nextCommunityID  uint
	nextMemberID     uint
	nextTimelineID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:            make(map[uint]models.User),
		mediaItems:       make(map[uint]models.MediaItem),
		comments:         make(map[uint]models.Comment),
		likes:            make(map[uint]models.Like),
		connections:      make(map[uint]models.Connection),
		communities:      make(map[uint]models.Community),
		members:          make(map[uint]models.CommunityMember),
		timelineEntries:  make(map[uint]models.TimelineEntry),
		nextUserID:       1,
		nextMediaItemID:  1,
		nextCommentID:    1,
		nextLikeID:       1,
		nextConnectionID: 1,
		nextCommunityID:  1,
		nextMemberID:     1,
		nextTimelineID:   1,
	}
}

func sortedIDs[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Users

func (s *MemoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) GetUser(id uint) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (s *MemoryStore) GetUserByUsername(username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedIDs(s.users) {
		if u := s.users[id]; u.Username == username {
			return &u, true
		}
	}
	return nil, false
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedIDs(s.users) {
		if u := s.users[id]; u.Email == email {
			return &u, true
		}
	}
	return nil, false
}

func (s *MemoryStore) AllUsers() ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		u := s.users[id]
		out = append(out, &u)
	}
	return out, nil
}

// Media items

func (s *MemoryStore) CreateMediaItem(m *models.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextMediaItemID
	s.nextMediaItemID++
	s.mediaItems[m.ID] = *m
	return nil
}

func (s *MemoryStore) GetMediaItem(id uint) (*models.MediaItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mediaItems[id]
	if !ok {
		return nil, false
	}
	return &m, true
}

func (s *MemoryStore) MediaItemsByUser(userID uint) ([]*models.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.MediaItem
	for _, id := range sortedIDs(s.mediaItems) {
		if m := s.mediaItems[id]; m.UserID == userID {
			item := m
			out = append(out, &item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *MemoryStore) AllMediaItems() ([]*models.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.MediaItem, 0, len(s.mediaItems))
	for _, id := range sortedIDs(s.mediaItems) {
		m := s.mediaItems[id]
		out = append(out, &m)
	}
	return out, nil
}

func (s *MemoryStore) UpdateMediaItem(id uint, upd models.MediaItemUpdate) (*models.MediaItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mediaItems[id]
	if !ok {
		return nil, false
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Creator != nil {
		m.Creator = *upd.Creator
	}
	if upd.MediaType != nil {
		m.MediaType = *upd.MediaType
	}
	if upd.Story != nil {
		m.Story = *upd.Story
	}
	if upd.Position != nil {
		m.Position = *upd.Position
	}
	s.mediaItems[id] = m
	return &m, true
}

func (s *MemoryStore) SetMediaItemCounts(id uint, likeCount, commentCount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mediaItems[id]
	if !ok {
		return false
	}
	m.LikeCount = likeCount
	m.CommentCount = commentCount
	s.mediaItems[id] = m
	return true
}

func (s *MemoryStore) DeleteMediaItem(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mediaItems[id]; !ok {
		return false
	}
	delete(s.mediaItems, id)
	return true
}

// Comments

func (s *MemoryStore) CreateComment(c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCommentID
	s.nextCommentID++
	s.comments[c.ID] = *c
	return nil
}

func (s *MemoryStore) GetComment(id uint) (*models.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, false
	}
	return &c, true
}

func (s *MemoryStore) CommentsByMediaItem(mediaItemID uint) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Comment
	for _, id := range sortedIDs(s.comments) {
		if c := s.comments[id]; c.MediaItemID == mediaItemID {
			comment := c
			out = append(out, &comment)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteComment(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return false
	}
	delete(s.comments, id)
	return true
}

// Likes

func (s *MemoryStore) CreateLike(l *models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = s.nextLikeID
	s.nextLikeID++
	s.likes[l.ID] = *l
	return nil
}

func (s *MemoryStore) GetLike(userID, mediaItemID uint) (*models.Like, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedIDs(s.likes) {
		if l := s.likes[id]; l.UserID == userID && l.MediaItemID == mediaItemID {
			return &l, true
		}
	}
	return nil, false
}

func (s *MemoryStore) LikesByMediaItem(mediaItemID uint) ([]*models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Like
	for _, id := range sortedIDs(s.likes) {
		if l := s.likes[id]; l.MediaItemID == mediaItemID {
			like := l
			out = append(out, &like)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteLike(userID, mediaItemID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range s.likes {
		if l.UserID == userID && l.MediaItemID == mediaItemID {
			delete(s.likes, id)
			return true
		}
	}
	return false
}

// Connections

func (s *MemoryStore) CreateConnection(c *models.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextConnectionID
	s.nextConnectionID++
	s.connections[c.ID] = *c
	return nil
}

func (s *MemoryStore) GetConnection(id uint) (*models.Connection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.connections[id]
	if !ok {
		return nil, false
	}
	return &c, true
}

func (s *MemoryStore) ConnectionsByUser(userID uint) ([]*models.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Connection
	for _, id := range sortedIDs(s.connections) {
		if c := s.connections[id]; c.UserID == userID || c.ConnectedUserID == userID {
			conn := c
			out = append(out, &conn)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateConnection(id uint, upd models.ConnectionUpdate) (*models.Connection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.connections[id]
	if !ok {
		return nil, false
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	s.connections[id] = c
	return &c, true
}

// Communities

func (s *MemoryStore) CreateCommunity(c *models.Community) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCommunityID
	s.nextCommunityID++
	s.communities[c.ID] = *c
	return nil
}

func (s *MemoryStore) GetCommunity(id uint) (*models.Community, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.communities[id]
	if !ok {
		return nil, false
	}
	return &c, true
}

func (s *MemoryStore) AllCommunities() ([]*models.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Community, 0, len(s.communities))
	for _, id := range sortedIDs(s.communities) {
		c := s.communities[id]
		out = append(out, &c)
	}
	return out, nil
}

func (s *MemoryStore) CommunitiesByUser(userID uint) ([]*models.Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Community
	for _, id := range sortedIDs(s.members) {
		m := s.members[id]
		if m.UserID != userID {
			continue
		}
		if c, ok := s.communities[m.CommunityID]; ok {
			community := c
			out = append(out, &community)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateCommunity(id uint, upd models.CommunityUpdate) (*models.Community, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[id]
	if !ok {
		return nil, false
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.MediaType != nil {
		c.MediaType = *upd.MediaType
	}
	if upd.Color != nil {
		c.Color = *upd.Color
	}
	s.communities[id] = c
	return &c, true
}

func (s *MemoryStore) SetCommunityMemberCount(id uint, memberCount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[id]
	if !ok {
		return false
	}
	c.MemberCount = memberCount
	s.communities[id] = c
	return true
}

func (s *MemoryStore) DeleteCommunity(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.communities[id]; !ok {
		return false
	}
	delete(s.communities, id)
	return true
}

// Community members

func (s *MemoryStore) CreateCommunityMember(m *models.CommunityMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextMemberID
	s.nextMemberID++
	s.members[m.ID] = *m
	return nil
}

func (s *MemoryStore) GetCommunityMember(communityID, userID uint) (*models.CommunityMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedIDs(s.members) {
		if m := s.members[id]; m.CommunityID == communityID && m.UserID == userID {
			return &m, true
		}
	}
	return nil, false
}

func (s *MemoryStore) MembersByCommunity(communityID uint) ([]*models.CommunityMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CommunityMember
	for _, id := range sortedIDs(s.members) {
		if m := s.members[id]; m.CommunityID == communityID {
			member := m
			out = append(out, &member)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteCommunityMember(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[id]; !ok {
		return false
	}
	delete(s.members, id)
	return true
}

func (s *MemoryStore) DeleteMembersByCommunity(communityID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, m := range s.members {
		if m.CommunityID == communityID {
			delete(s.members, id)
			removed++
		}
	}
	return removed
}

// Timeline

func (s *MemoryStore) CreateTimelineEntry(e *models.TimelineEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextTimelineID
	s.nextTimelineID++
	s.timelineEntries[e.ID] = *e
	return nil
}

func (s *MemoryStore) GetTimelineEntry(id uint) (*models.TimelineEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.timelineEntries[id]
	if !ok {
		return nil, false
	}
	return &e, true
}

func (s *MemoryStore) TimelineByUser(userID uint) ([]*models.TimelineEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TimelineEntry
	for _, id := range sortedIDs(s.timelineEntries) {
		if e := s.timelineEntries[id]; e.UserID == userID {
			entry := e
			out = append(out, &entry)
		}
	}
	// Newest first; equal timestamps fall back to newest id first.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) DeleteTimelineEntry(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timelineEntries[id]; !ok {
		return false
	}
	delete(s.timelineEntries, id)
	return true
}
