package validator

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

func validArticle() domain.Article {
	return domain.Article{
		Title:    "A Valid Title",
		Slug:     "a-valid-title",
		Excerpt:  "Short summary",
		Content:  "Body text",
		Category: "politics",
		Author:   "Jane Writer",
		Status:   domain.StatusPublished,
		ReadTime: 3,
	}
}

func TestValidateArticle_Valid(t *testing.T) {
	v := NewValidator()
	a := validArticle()
	require.NoError(t, v.ValidateArticle(&a))
}

func TestValidateArticle_Invalid(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(a *domain.Article)
		field  string
	}{
		{"missing title", func(a *domain.Article) { a.Title = "" }, "Title"},
		{"missing slug", func(a *domain.Article) { a.Slug = "" }, "Slug"},
		{"bad slug format", func(a *domain.Article) { a.Slug = "Has Spaces!" }, "Slug"},
		{"missing content", func(a *domain.Article) { a.Content = "" }, "Content"},
		{"unknown category", func(a *domain.Article) { a.Category = "sports" }, "Category"},
		{"missing author", func(a *domain.Article) { a.Author = "" }, "Author"},
		{"unknown status", func(a *domain.Article) { a.Status = "archived" }, "Status"},
		{"zero read time", func(a *domain.Article) { a.ReadTime = 0 }, "ReadTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validArticle()
			tt.mutate(&a)

			err := v.ValidateArticle(&a)
			require.Error(t, err)

			ve, ok := err.(validation.Errors)
			require.True(t, ok, "expected validation.Errors, got %T", err)
			assert.Contains(t, ve, tt.field)
		})
	}
}

func TestValidateArticleUpdate(t *testing.T) {
	v := NewValidator()

	empty := ""
	badCategory := "sports"
	goodTitle := "New Title"
	goodStatus := domain.StatusDraft

	require.NoError(t, v.ValidateArticleUpdate(&domain.ArticleUpdate{}))
	require.NoError(t, v.ValidateArticleUpdate(&domain.ArticleUpdate{Title: &goodTitle, Status: &goodStatus}))

	err := v.ValidateArticleUpdate(&domain.ArticleUpdate{Title: &empty})
	require.Error(t, err)

	err = v.ValidateArticleUpdate(&domain.ArticleUpdate{Category: &badCategory})
	require.Error(t, err)
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateComment(&domain.Comment{
		ArticleID: 1,
		Author:    "Reader",
		Content:   "Nice article",
	}))

	err := v.ValidateComment(&domain.Comment{ArticleID: 1, Author: "Reader"})
	require.Error(t, err, "empty content must fail")

	err = v.ValidateComment(&domain.Comment{Author: "Reader", Content: "hi"})
	require.Error(t, err, "missing article id must fail")
}

func TestValidateComment_WordCap(t *testing.T) {
	v := NewValidator()

	long := ""
	for i := 0; i < 501; i++ {
		long += "word "
	}

	err := v.ValidateComment(&domain.Comment{ArticleID: 1, Author: "Reader", Content: long})
	require.Error(t, err)
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		email string
		valid bool
	}{
		{"reader@example.com", true},
		{"first.last+tag@news.co.ke", true},
		{"", false},
		{"not-an-email", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.ValidateEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateCredentials("admin", "secret"))
	require.Error(t, v.ValidateCredentials("", "secret"))
	require.Error(t, v.ValidateCredentials("admin", ""))
}

func TestValidateSearchQuery(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		query string
		valid bool
	}{
		{"kenya", true},
		{"ke", true},
		{"k", false},
		{"", false},
		{"  a  ", false},
		{" ab ", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			err := v.ValidateSearchQuery(tt.query)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
