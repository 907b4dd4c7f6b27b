package service

import (
	"context"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

// ArticleServiceInterface defines the interface for article operations.
// Used for dependency injection and substitution in tests.
type ArticleServiceInterface interface {
	// List returns articles matching the filter, newest first.
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	// GetByID returns an article regardless of status, for admin callers.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	// Read returns a published article by slug and counts the view.
	Read(ctx context.Context, slug string) (*domain.Article, error)
	// Featured returns the most viewed published articles.
	Featured(ctx context.Context, limit int) ([]domain.Article, error)
	// Search returns published articles matching the query.
	Search(ctx context.Context, query string) ([]domain.Article, error)
	// Create validates and stores a new article.
	Create(ctx context.Context, input ArticleInput) (*domain.Article, error)
	// Update validates and applies a partial update.
	Update(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error)
	// Delete removes an article.
	Delete(ctx context.Context, id int64) error
}

// AuthServiceInterface defines the interface for authentication.
type AuthServiceInterface interface {
	// Login checks credentials and issues a signed token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// VerifyToken checks a token and returns its claims.
	VerifyToken(tokenString string) (*domain.TokenClaims, error)
}

// CommentServiceInterface defines the interface for comment operations.
type CommentServiceInterface interface {
	// ListBySlug returns approved comments for the article with the slug.
	ListBySlug(ctx context.Context, slug string) ([]domain.Comment, error)
	// AddToSlug stores a new unapproved comment on the article.
	AddToSlug(ctx context.Context, slug, author, content string) (*domain.Comment, error)
	// Approve makes a comment publicly visible.
	Approve(ctx context.Context, id int64) (*domain.Comment, error)
}

// NewsletterServiceInterface defines the interface for newsletter signups.
type NewsletterServiceInterface interface {
	// Subscribe upserts a subscription for the email.
	Subscribe(ctx context.Context, email string) (*domain.Subscription, error)
	// Subscribers returns all active subscriptions.
	Subscribers(ctx context.Context) ([]domain.Subscription, error)
}
