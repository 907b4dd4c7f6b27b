package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

func TestCommentCreate_StartsUnapproved(t *testing.T) {
	repo := NewMemoryCommentRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Comment{
		ArticleID: 1,
		Author:    "Reader",
		Content:   "Great piece",
		Approved:  true, // caller cannot smuggle approval through Create
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.False(t, created.Approved)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCommentListByArticle_ApprovedOnlyOldestFirst(t *testing.T) {
	repo := NewMemoryCommentRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.Comment{ArticleID: 1, Author: "A", Content: "first"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, domain.Comment{ArticleID: 1, Author: "B", Content: "second"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Comment{ArticleID: 1, Author: "C", Content: "pending"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Comment{ArticleID: 2, Author: "D", Content: "other article"})
	require.NoError(t, err)

	_, err = repo.Approve(ctx, first.ID)
	require.NoError(t, err)
	_, err = repo.Approve(ctx, second.ID)
	require.NoError(t, err)

	got, err := repo.ListByArticle(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Content)
	require.Equal(t, "second", got[1].Content)
}

func TestCommentListByArticle_UnknownArticleIsEmpty(t *testing.T) {
	repo := NewMemoryCommentRepository()

	got, err := repo.ListByArticle(context.Background(), 99)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCommentApprove_NotFound(t *testing.T) {
	repo := NewMemoryCommentRepository()

	_, err := repo.Approve(context.Background(), 5)
	require.ErrorIs(t, err, ErrNotFound)
}
