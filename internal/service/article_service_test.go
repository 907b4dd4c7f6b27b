package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

func newArticleService() (*ArticleService, repository.ArticleRepository) {
	repo := repository.NewMemoryArticleRepository()
	return NewArticleService(repo, validator.NewValidator()), repo
}

func validInput() ArticleInput {
	return ArticleInput{
		Title:    "Nairobi Expressway Opens New Exit",
		Excerpt:  "The new exit eases traffic heading into Westlands.",
		Content:  "The expressway operator opened a new exit ramp this morning after months of construction.",
		Category: "politics",
		Author:   "Jane Wanjiru",
		Status:   domain.StatusPublished,
	}
}

func TestArticleServiceCreateDerivesSlugAndReadTime(t *testing.T) {
	svc, _ := newArticleService()

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "nairobi-expressway-opens-new-exit", created.Slug)
	assert.Equal(t, 1, created.ReadTime)
	assert.Equal(t, domain.StatusPublished, created.Status)
}

func TestArticleServiceCreateDefaultsToDraft(t *testing.T) {
	svc, _ := newArticleService()

	input := validInput()
	input.Status = ""

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, created.Status)
}

func TestArticleServiceCreateKeepsExplicitSlug(t *testing.T) {
	svc, _ := newArticleService()

	input := validInput()
	input.Slug = "expressway-exit"

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "expressway-exit", created.Slug)
}

func TestArticleServiceCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newArticleService()

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestArticleServiceCreateRejectsInvalidCategory(t *testing.T) {
	svc, _ := newArticleService()

	input := validInput()
	input.Category = "weather"

	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)
}

func TestArticleServiceReadCountsView(t *testing.T) {
	svc, repo := newArticleService()

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	got, err := svc.Read(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ViewCount)
}

func TestArticleServiceReadHidesDrafts(t *testing.T) {
	svc, _ := newArticleService()

	input := validInput()
	input.Status = domain.StatusDraft

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Read(context.Background(), created.Slug)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestArticleServiceSearchRejectsShortQuery(t *testing.T) {
	svc, _ := newArticleService()

	_, err := svc.Search(context.Background(), "k")
	assert.Error(t, err)

	_, err = svc.Search(context.Background(), "  a  ")
	assert.Error(t, err)
}

func TestArticleServiceSearchFindsPublished(t *testing.T) {
	svc, _ := newArticleService()

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	results, err := svc.Search(context.Background(), "expressway")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "nairobi-expressway-opens-new-exit", results[0].Slug)
}

func TestArticleServiceUpdateRejectsSlugCollision(t *testing.T) {
	svc, _ := newArticleService()

	first, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	second := validInput()
	second.Title = "Harambee Stars Name New Coach"
	other, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), other.ID, domain.ArticleUpdate{Slug: &first.Slug})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// Re-submitting an article's own slug is not a collision.
	updated, err := svc.Update(context.Background(), other.ID, domain.ArticleUpdate{Slug: &other.Slug})
	require.NoError(t, err)
	assert.Equal(t, other.Slug, updated.Slug)
}

func TestArticleServiceUpdateMissing(t *testing.T) {
	svc, _ := newArticleService()

	title := "Updated"
	_, err := svc.Update(context.Background(), 99, domain.ArticleUpdate{Title: &title})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestArticleServiceDeleteMissing(t *testing.T) {
	svc, _ := newArticleService()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
