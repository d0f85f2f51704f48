package cache

import (
	"sync"

	"github.com/nsmeele/magistra/internal/models"
)

// Cache keeps the live quiz session per chat between updates. The stored
// snapshot in the database stays the durable copy; this is only the hot
// state for the request/response loop.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*models.SessionState
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*models.SessionState),
	}
}

func (c *Cache) SetSession(chatID int64, state *models.SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[chatID] = state
}

func (c *Cache) Session(chatID int64) (*models.SessionState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, exists := c.sessions[chatID]
	return state, exists
}

func (c *Cache) DeleteSession(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, chatID)
}
