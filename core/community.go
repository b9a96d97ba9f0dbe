package core

import (
	"fmt"

	"github.com/toplistapp/toplist-server/cmd/models"
)

// CreateCommunity stores the community and enrolls its creator in the same
// guarded sequence: the membership row and memberCount=1 appear together.
func (c *Core) CreateCommunity(cm *models.Community) (*models.Community, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.GetUser(cm.CreatorID); !ok {
		return nil, fmt.Errorf("user %d: %w", cm.CreatorID, models.ErrNotFound)
	}
	if cm.Color == "" {
		cm.Color = models.DefaultAvatarColor
	}
	cm.MemberCount = 1
	if err := c.store.CreateCommunity(cm); err != nil {
		return nil, err
	}
	member := &models.CommunityMember{
		CommunityID: cm.ID,
		UserID:      cm.CreatorID,
		JoinedAt:    c.now(),
	}
	if err := c.store.CreateCommunityMember(member); err != nil {
		return nil, err
	}
	return cm, nil
}

func (c *Core) GetCommunity(id uint) (*models.Community, error) {
	cm, ok := c.store.GetCommunity(id)
	if !ok {
		return nil, fmt.Errorf("community %d: %w", id, models.ErrNotFound)
	}
	return cm, nil
}

func (c *Core) ListCommunities() ([]*models.Community, error) {
	return c.store.AllCommunities()
}

func (c *Core) CommunitiesForUser(userID uint) ([]*models.Community, error) {
	return c.store.CommunitiesByUser(userID)
}

func (c *Core) UpdateCommunity(id uint, upd models.CommunityUpdate) (*models.Community, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cm, ok := c.store.UpdateCommunity(id, upd)
	if !ok {
		return nil, fmt.Errorf("community %d: %w", id, models.ErrNotFound)
	}
	return cm, nil
}

// DeleteCommunity cascades: every membership row goes before the community
// itself.
func (c *Core) DeleteCommunity(id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.GetCommunity(id); !ok {
		return fmt.Errorf("community %d: %w", id, models.ErrNotFound)
	}
	c.store.DeleteMembersByCommunity(id)
	c.store.DeleteCommunity(id)
	return nil
}

func (c *Core) JoinCommunity(communityID, userID uint) (*models.CommunityMember, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.GetUser(userID); !ok {
		return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	community, ok := c.store.GetCommunity(communityID)
	if !ok {
		return nil, fmt.Errorf("community %d: %w", communityID, models.ErrNotFound)
	}
	if _, ok := c.store.GetCommunityMember(communityID, userID); ok {
		return nil, fmt.Errorf("user %d in community %d: %w", userID, communityID, models.ErrDuplicate)
	}

	member := &models.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
		JoinedAt:    c.now(),
	}
	if err := c.store.CreateCommunityMember(member); err != nil {
		return nil, err
	}
	c.store.SetCommunityMemberCount(communityID, clampAdd(community.MemberCount, 1))
	return member, nil
}

func (c *Core) LeaveCommunity(communityID, userID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	member, ok := c.store.GetCommunityMember(communityID, userID)
	if !ok {
		return fmt.Errorf("membership of user %d in community %d: %w", userID, communityID, models.ErrNotFound)
	}
	c.store.DeleteCommunityMember(member.ID)
	if community, ok := c.store.GetCommunity(communityID); ok {
		c.store.SetCommunityMemberCount(communityID, clampAdd(community.MemberCount, -1))
	}
	return nil
}

// MembersForCommunity returns memberships enriched with their users.
func (c *Core) MembersForCommunity(communityID uint) ([]models.CommunityMemberWithUser, error) {
	members, err := c.store.MembersByCommunity(communityID)
	if err != nil {
		return nil, err
	}
	out := make([]models.CommunityMemberWithUser, 0, len(members))
	for _, member := range members {
		enriched := models.CommunityMemberWithUser{CommunityMember: *member}
		if user, ok := c.store.GetUser(member.UserID); ok {
			enriched.User = user
		}
		out = append(out, enriched)
	}
	return out, nil
}
