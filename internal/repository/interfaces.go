package repository

import (
	"context"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, article domain.Article) (*domain.Article, error)
	Update(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
	IncrementViewCount(ctx context.Context, id int64) error
	Featured(ctx context.Context, limit int) ([]domain.Article, error)
	Search(ctx context.Context, query string) ([]domain.Article, error)
	Count(ctx context.Context) int
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	Count(ctx context.Context) int
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	Approve(ctx context.Context, id int64) (*domain.Comment, error)
	Count(ctx context.Context) int
}

// NewsletterRepository defines methods for newsletter subscription data access.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (*domain.Subscription, error)
	Subscribers(ctx context.Context) ([]domain.Subscription, error)
	Count(ctx context.Context) int
}
