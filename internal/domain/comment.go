package domain

import "time"

// Comment represents a reader comment on an article. Comments start
// unapproved and only show on the public surface once approved.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"articleId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}
