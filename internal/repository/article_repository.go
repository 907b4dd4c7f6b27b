package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

const (
	// DefaultListLimit caps List results when the caller does not set one.
	DefaultListLimit = 20
	// DefaultFeaturedLimit caps Featured results when the caller does not set one.
	DefaultFeaturedLimit = 3
)

// MemoryArticleRepository implements ArticleRepository with an in-process
// store: a map keyed by id plus a monotonic counter. Ids are never reused,
// even after deletion. All reads return copies so callers cannot mutate
// repository state without going through a repository operation.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	articles map[int64]domain.Article
	nextID   int64
}

// NewMemoryArticleRepository creates an empty MemoryArticleRepository.
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		articles: make(map[int64]domain.Article),
		nextID:   1,
	}
}

// List returns articles matching the filter, newest first, paginated after
// sorting. An empty status means published; "all" disables the status
// filter. An out-of-range offset yields an empty slice, not an error.
func (r *MemoryArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	status := filter.Status
	if status == "" {
		status = domain.StatusPublished
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	matched := make([]domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if status != "all" && a.Status != status {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && a.Category != filter.Category {
			continue
		}
		matched = append(matched, cloneArticle(a))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []domain.Article{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// GetByID returns the article with the given id regardless of status, so
// admin callers can fetch drafts.
func (r *MemoryArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := cloneArticle(a)
	return &c, nil
}

// GetBySlug returns the article with the given slug regardless of status.
// Status-gating the public article page is the caller's concern.
func (r *MemoryArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.articles {
		if a.Slug == slug {
			c := cloneArticle(a)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the next id, zeroes the view count, stamps both
// timestamps with the same instant and stores the article.
func (r *MemoryArticleRepository) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	now := time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = r.nextID
	r.nextID++
	article.ViewCount = 0
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.Tags == nil {
		article.Tags = []string{}
	}

	r.articles[article.ID] = cloneArticle(article)
	c := cloneArticle(article)
	return &c, nil
}

// Update merges the set fields of update over the stored article and
// refreshes UpdatedAt. Id, CreatedAt and ViewCount cannot change here.
func (r *MemoryArticleRepository) Update(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Title != nil {
		a.Title = *update.Title
	}
	if update.Slug != nil {
		a.Slug = *update.Slug
	}
	if update.Excerpt != nil {
		a.Excerpt = *update.Excerpt
	}
	if update.Content != nil {
		a.Content = *update.Content
	}
	if update.Category != nil {
		a.Category = *update.Category
	}
	if update.Author != nil {
		a.Author = *update.Author
	}
	if update.FeaturedImage != nil {
		a.FeaturedImage = *update.FeaturedImage
	}
	if update.Tags != nil {
		tags := make([]string, len(*update.Tags))
		copy(tags, *update.Tags)
		a.Tags = tags
	}
	if update.Status != nil {
		a.Status = *update.Status
	}
	if update.ReadTime != nil {
		a.ReadTime = *update.ReadTime
	}
	a.UpdatedAt = time.Now().UTC()

	r.articles[id] = a
	c := cloneArticle(a)
	return &c, nil
}

// Delete removes the article. The id is never handed out again.
func (r *MemoryArticleRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

// IncrementViewCount adds exactly one view. The read-modify-write runs
// under the write lock so concurrent increments never lose updates.
// UpdatedAt is not touched.
func (r *MemoryArticleRepository) IncrementViewCount(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return ErrNotFound
	}
	a.ViewCount++
	r.articles[id] = a
	return nil
}

// Featured returns published articles by descending view count, ties
// broken by ascending id so the order is deterministic.
func (r *MemoryArticleRepository) Featured(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	r.mu.RLock()
	published := make([]domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if a.Status == domain.StatusPublished {
			published = append(published, cloneArticle(a))
		}
	}
	r.mu.RUnlock()

	sort.Slice(published, func(i, j int) bool {
		if published[i].ViewCount == published[j].ViewCount {
			return published[i].ID < published[j].ID
		}
		return published[i].ViewCount > published[j].ViewCount
	})

	if limit > len(published) {
		limit = len(published)
	}
	return published[:limit], nil
}

// Search matches the query case-insensitively as a substring of title,
// excerpt, content or any tag of published articles. Results come back in
// ascending-id order with no ranking and no pagination; length checks on
// the query are the caller's concern.
func (r *MemoryArticleRepository) Search(ctx context.Context, query string) ([]domain.Article, error) {
	term := strings.ToLower(query)

	r.mu.RLock()
	matched := make([]domain.Article, 0)
	for _, a := range r.articles {
		if a.Status != domain.StatusPublished {
			continue
		}
		if articleMatches(a, term) {
			matched = append(matched, cloneArticle(a))
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

// Count reports the number of stored articles, any status.
func (r *MemoryArticleRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

func articleMatches(a domain.Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Excerpt), term) ||
		strings.Contains(strings.ToLower(a.Content), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// cloneArticle copies an article including its tag slice so neither side
// can alias the other's backing array.
func cloneArticle(a domain.Article) domain.Article {
	if a.Tags != nil {
		tags := make([]string, len(a.Tags))
		copy(tags, a.Tags)
		a.Tags = tags
	}
	return a
}
