package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/logger"
	"github.com/rodgersmanaseh/cedy1/internal/metrics"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/slug"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

// ErrSlugTaken is returned when a create or update would leave two
// articles sharing one slug. Slugs address articles on the public
// surface, so they stay unique.
var ErrSlugTaken = errors.New("slug already in use")

// ArticleInput carries the caller-supplied fields for a new article.
// Slug and ReadTime are derived from Title and Content when left empty.
type ArticleInput struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featuredImage"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status"`
	ReadTime      int      `json:"readTime"`
}

// ArticleService owns article business rules on top of the repository:
// input validation, slug derivation and uniqueness, read-time estimation,
// search query gating and view counting.
type ArticleService struct {
	articles  repository.ArticleRepository
	validator *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository, v *validator.Validator) *ArticleService {
	return &ArticleService{
		articles:  articles,
		validator: v,
	}
}

// List returns articles matching the filter.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetByID returns an article of any status.
func (s *ArticleService) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

// Read returns the published article with the slug and counts one view.
// Drafts are invisible here: the public surface treats them as missing.
func (s *ArticleService) Read(ctx context.Context, articleSlug string) (*domain.Article, error) {
	article, err := s.articles.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug %q: %w", articleSlug, err)
	}
	if article.Status != domain.StatusPublished {
		return nil, fmt.Errorf("get article by slug %q: %w", articleSlug, repository.ErrNotFound)
	}

	if err := s.articles.IncrementViewCount(ctx, article.ID); err != nil {
		// The article can vanish between the fetch and the increment;
		// the reader still gets the copy already in hand.
		logger.Warn("view count increment failed",
			slog.String("slug", articleSlug),
			slog.String("error", err.Error()))
	} else {
		article.ViewCount++
		metrics.ArticleViews.Inc()
	}

	return article, nil
}

// Featured returns the most viewed published articles.
func (s *ArticleService) Featured(ctx context.Context, limit int) ([]domain.Article, error) {
	articles, err := s.articles.Featured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("featured articles: %w", err)
	}
	return articles, nil
}

// Search returns published articles matching the query. Queries shorter
// than two characters are rejected before touching the store.
func (s *ArticleService) Search(ctx context.Context, query string) ([]domain.Article, error) {
	if err := s.validator.ValidateSearchQuery(query); err != nil {
		return nil, err
	}

	articles, err := s.articles.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	metrics.ObserveSearch(len(articles))
	return articles, nil
}

// Create validates the input, derives missing slug and read time, checks
// slug uniqueness and stores the article.
func (s *ArticleService) Create(ctx context.Context, input ArticleInput) (*domain.Article, error) {
	article := domain.Article{
		Title:         input.Title,
		Slug:          input.Slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		Category:      input.Category,
		Author:        input.Author,
		FeaturedImage: input.FeaturedImage,
		Tags:          input.Tags,
		Status:        input.Status,
		ReadTime:      input.ReadTime,
	}

	if article.Status == "" {
		article.Status = domain.StatusDraft
	}
	if article.Slug == "" {
		article.Slug = slug.Make(article.Title)
	}
	if article.ReadTime == 0 {
		article.ReadTime = slug.EstimateReadTime(article.Content)
	}

	if err := s.validator.ValidateArticle(&article); err != nil {
		return nil, err
	}

	if _, err := s.articles.GetBySlug(ctx, article.Slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check slug %q: %w", article.Slug, err)
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.ObserveArticleCreated(created.Category, created.Status)
	logger.Info("article created",
		slog.Int64("id", created.ID),
		slog.String("slug", created.Slug),
		slog.String("status", created.Status))
	return created, nil
}

// Update validates and applies a partial update. A changed slug must not
// collide with another article's.
func (s *ArticleService) Update(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
	if err := s.validator.ValidateArticleUpdate(&update); err != nil {
		return nil, err
	}

	if update.Slug != nil {
		existing, err := s.articles.GetBySlug(ctx, *update.Slug)
		switch {
		case err == nil && existing.ID != id:
			return nil, ErrSlugTaken
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("check slug %q: %w", *update.Slug, err)
		}
	}

	updated, err := s.articles.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update article %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes an article.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}
	logger.Info("article deleted", slog.Int64("id", id))
	return nil
}
