package core

import (
	"fmt"

	"github.com/toplistapp/toplist-server/cmd/models"
)

// RegisterUser creates a user after checking the global username and email
// uniqueness rules. Identity fields are immutable afterwards; the core has no
// user update or delete operation.
func (c *Core) RegisterUser(u *models.User) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if u.Username == "" || u.Email == "" || u.DisplayName == "" {
		return nil, fmt.Errorf("username, email and display name are required: %w", models.ErrInvalid)
	}
	if _, ok := c.store.GetUserByUsername(u.Username); ok {
		return nil, fmt.Errorf("username %q: %w", u.Username, models.ErrDuplicate)
	}
	if _, ok := c.store.GetUserByEmail(u.Email); ok {
		return nil, fmt.Errorf("email %q: %w", u.Email, models.ErrDuplicate)
	}
	if u.AvatarColor == "" {
		u.AvatarColor = models.DefaultAvatarColor
	}
	if err := c.store.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *Core) GetUser(id uint) (*models.User, error) {
	u, ok := c.store.GetUser(id)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, models.ErrNotFound)
	}
	return u, nil
}

func (c *Core) ListUsers() ([]*models.User, error) {
	return c.store.AllUsers()
}
