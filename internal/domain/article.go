package domain

import "time"

// Article represents a single news story, published or draft.
type Article struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Author        string    `json:"author"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Tags          []string  `json:"tags"`
	Status        string    `json:"status"`
	ReadTime      int       `json:"readTime"`
	ViewCount     int64     `json:"viewCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished}

// ValidCategories contains all valid article categories.
var ValidCategories = []string{"politics", "education", "entertainment", "gossip", "football"}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidCategory checks if a category is valid.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ArticleUpdate carries a partial update for an article. Nil fields keep
// the stored value; set fields replace it wholesale, including Tags.
type ArticleUpdate struct {
	Title         *string
	Slug          *string
	Excerpt       *string
	Content       *string
	Category      *string
	Author        *string
	FeaturedImage *string
	Tags          *[]string
	Status        *string
	ReadTime      *int
}

// ArticleFilter narrows List results.
type ArticleFilter struct {
	Status   string
	Category string
	Limit    int
	Offset   int
}
