package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

// MemoryCommentRepository implements CommentRepository in memory.
type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments map[int64]domain.Comment
	nextID   int64
}

// NewMemoryCommentRepository creates an empty MemoryCommentRepository.
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{
		comments: make(map[int64]domain.Comment),
		nextID:   1,
	}
}

// ListByArticle returns approved comments for the article, oldest first,
// ties broken by ascending id. The article id itself is not checked
// against the article store; an unknown article simply has no comments.
func (r *MemoryCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	r.mu.RLock()
	matched := make([]domain.Comment, 0)
	for _, c := range r.comments {
		if c.ArticleID == articleID && c.Approved {
			matched = append(matched, c)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

// Create assigns the next id and stores the comment unapproved.
func (r *MemoryCommentRepository) Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.nextID
	r.nextID++
	comment.Approved = false
	comment.CreatedAt = time.Now().UTC()

	r.comments[comment.ID] = comment
	return &comment, nil
}

// Approve marks the comment as approved so it shows publicly.
func (r *MemoryCommentRepository) Approve(ctx context.Context, id int64) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Approved = true
	r.comments[id] = c
	return &c, nil
}

// Count reports the number of stored comments, approved or not.
func (r *MemoryCommentRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.comments)
}
