package core

import (
	"fmt"
	"sort"

	"github.com/toplistapp/toplist-server/cmd/models"
)

// DefaultTrendingLimit caps the trending view when the caller names no limit.
const DefaultTrendingLimit = 8

// AddLike records a (user, media item) like. At most one like may exist per
// pair; the row and the counter bump happen under one lock so they cannot
// come apart.
func (c *Core) AddLike(userID, mediaItemID uint) (*models.Like, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.GetLike(userID, mediaItemID); ok {
		return nil, fmt.Errorf("user %d already liked media item %d: %w", userID, mediaItemID, models.ErrDuplicate)
	}
	like := &models.Like{UserID: userID, MediaItemID: mediaItemID}
	if err := c.store.CreateLike(like); err != nil {
		return nil, err
	}
	if item, ok := c.store.GetMediaItem(mediaItemID); ok {
		c.store.SetMediaItemCounts(item.ID, clampAdd(item.LikeCount, 1), item.CommentCount)
	}
	return like, nil
}

func (c *Core) RemoveLike(userID, mediaItemID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.GetLike(userID, mediaItemID); !ok {
		return fmt.Errorf("like for user %d on media item %d: %w", userID, mediaItemID, models.ErrNotFound)
	}
	c.store.DeleteLike(userID, mediaItemID)
	if item, ok := c.store.GetMediaItem(mediaItemID); ok {
		c.store.SetMediaItemCounts(item.ID, clampAdd(item.LikeCount, -1), item.CommentCount)
	}
	return nil
}

// AddComment attaches a comment to a media item and bumps its comment count.
func (c *Core) AddComment(userID, mediaItemID uint, content string) (*models.CommentWithUser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, ok := c.store.GetUser(userID)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	item, ok := c.store.GetMediaItem(mediaItemID)
	if !ok {
		return nil, fmt.Errorf("media item %d: %w", mediaItemID, models.ErrNotFound)
	}

	comment := &models.Comment{
		UserID:      userID,
		MediaItemID: mediaItemID,
		Content:     content,
		CreatedAt:   c.now(),
	}
	if err := c.store.CreateComment(comment); err != nil {
		return nil, err
	}
	c.store.SetMediaItemCounts(item.ID, item.LikeCount, clampAdd(item.CommentCount, 1))
	return &models.CommentWithUser{Comment: *comment, User: user}, nil
}

func (c *Core) RemoveComment(commentID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	comment, ok := c.store.GetComment(commentID)
	if !ok {
		return fmt.Errorf("comment %d: %w", commentID, models.ErrNotFound)
	}
	c.store.DeleteComment(commentID)
	if item, ok := c.store.GetMediaItem(comment.MediaItemID); ok {
		c.store.SetMediaItemCounts(item.ID, item.LikeCount, clampAdd(item.CommentCount, -1))
	}
	return nil
}

// CommentsForMediaItem returns the item's comments enriched with their
// authors. A missing author just leaves the user field empty.
func (c *Core) CommentsForMediaItem(mediaItemID uint) ([]models.CommentWithUser, error) {
	comments, err := c.store.CommentsByMediaItem(mediaItemID)
	if err != nil {
		return nil, err
	}
	out := make([]models.CommentWithUser, 0, len(comments))
	for _, comment := range comments {
		enriched := models.CommentWithUser{Comment: *comment}
		if user, ok := c.store.GetUser(comment.UserID); ok {
			enriched.User = user
		}
		out = append(out, enriched)
	}
	return out, nil
}

// Trending ranks all media items by engagement score (likes + 2×comments)
// and returns the top limit. The score is derived on every call; nothing is
// stored. Ties keep the store's iteration order.
func (c *Core) Trending(limit int) ([]models.TrendingItem, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	items, err := c.store.AllMediaItems()
	if err != nil {
		return nil, err
	}
	scored := make([]models.TrendingItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, models.TrendingItem{
			MediaItem:       *item,
			EngagementScore: item.LikeCount + item.CommentCount*2,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].EngagementScore > scored[j].EngagementScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
