package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

// MemoryUserRepository implements UserRepository with the same store shape
// as the article repository: id-keyed map plus a monotonic counter.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]domain.User
	nextID int64
}

// NewMemoryUserRepository creates an empty MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[int64]domain.User),
		nextID: 1,
	}
}

// GetByID returns the user with the given id.
func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// GetByUsername returns the user with the given username.
func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the next id and stores the user.
func (r *MemoryUserRepository) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now().UTC()

	r.users[user.ID] = user
	return &user, nil
}

// Count reports the number of stored users.
func (r *MemoryUserRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
