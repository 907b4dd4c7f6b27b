package domain

import "time"

// Subscription represents a newsletter signup. Re-subscribing an existing
// email reactivates the record instead of creating a duplicate.
type Subscription struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Subscribed bool      `json:"subscribed"`
	CreatedAt  time.Time `json:"createdAt"`
}
