package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

// MemoryNewsletterRepository implements NewsletterRepository in memory.
type MemoryNewsletterRepository struct {
	mu            sync.RWMutex
	subscriptions map[int64]domain.Subscription
	nextID        int64
}

// NewMemoryNewsletterRepository creates an empty MemoryNewsletterRepository.
func NewMemoryNewsletterRepository() *MemoryNewsletterRepository {
	return &MemoryNewsletterRepository{
		subscriptions: make(map[int64]domain.Subscription),
		nextID:        1,
	}
}

// Subscribe upserts by email: an existing record flips Subscribed back to
// true and keeps its id and CreatedAt; otherwise a new record is stored.
// The whole check-then-write runs under the write lock so two concurrent
// signups for the same email cannot both insert.
func (r *MemoryNewsletterRepository) Subscribe(ctx context.Context, email string) (*domain.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.subscriptions {
		if s.Email == email {
			s.Subscribed = true
			r.subscriptions[id] = s
			return &s, nil
		}
	}

	sub := domain.Subscription{
		ID:         r.nextID,
		Email:      email,
		Subscribed: true,
		CreatedAt:  time.Now().UTC(),
	}
	r.nextID++
	r.subscriptions[sub.ID] = sub
	return &sub, nil
}

// Subscribers returns active subscriptions in ascending-id order.
func (r *MemoryNewsletterRepository) Subscribers(ctx context.Context) ([]domain.Subscription, error) {
	r.mu.RLock()
	matched := make([]domain.Subscription, 0, len(r.subscriptions))
	for _, s := range r.subscriptions {
		if s.Subscribed {
			matched = append(matched, s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

// Count reports the number of stored subscription records.
func (r *MemoryNewsletterRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscriptions)
}
