package service

import (
	"context"
	"fmt"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

// CommentService resolves article slugs and drives the comment store.
type CommentService struct {
	comments  repository.CommentRepository
	articles  repository.ArticleRepository
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, v *validator.Validator) *CommentService {
	return &CommentService{
		comments:  comments,
		articles:  articles,
		validator: v,
	}
}

// ListBySlug returns approved comments for the article, oldest first.
func (s *CommentService) ListBySlug(ctx context.Context, articleSlug string) ([]domain.Comment, error) {
	article, err := s.articles.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug %q: %w", articleSlug, err)
	}

	comments, err := s.comments.ListByArticle(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments for article %d: %w", article.ID, err)
	}
	return comments, nil
}

// AddToSlug validates and stores a new comment, which starts unapproved.
func (s *CommentService) AddToSlug(ctx context.Context, articleSlug, author, content string) (*domain.Comment, error) {
	article, err := s.articles.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug %q: %w", articleSlug, err)
	}

	comment := domain.Comment{
		ArticleID: article.ID,
		Author:    author,
		Content:   content,
	}
	if err := s.validator.ValidateComment(&comment); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

// Approve makes a comment publicly visible.
func (s *CommentService) Approve(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.comments.Approve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve comment %d: %w", id, err)
	}
	return comment, nil
}
