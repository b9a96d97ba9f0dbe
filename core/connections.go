package core

import (
	"fmt"

	"github.com/toplistapp/toplist-server/cmd/models"
)

// CreateConnection records a directed pending edge between two existing
// users. Nothing transitions it to accepted yet.
func (c *Core) CreateConnection(userID, connectedUserID uint) (*models.Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.GetUser(userID); !ok {
		return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	if _, ok := c.store.GetUser(connectedUserID); !ok {
		return nil, fmt.Errorf("user %d: %w", connectedUserID, models.ErrNotFound)
	}

	conn := &models.Connection{
		UserID:          userID,
		ConnectedUserID: connectedUserID,
		Status:          models.ConnectionPending,
	}
	if err := c.store.CreateConnection(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// ConnectionsForUser returns edges where the user is either endpoint.
func (c *Core) ConnectionsForUser(userID uint) ([]*models.Connection, error) {
	return c.store.ConnectionsByUser(userID)
}
