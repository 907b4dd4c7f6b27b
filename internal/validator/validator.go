package validator

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
)

var (
	slugRegex       = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validCategories = []interface{}{"politics", "education", "entertainment", "gossip", "football"}
	validStatuses   = []interface{}{domain.StatusDraft, domain.StatusPublished}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates a fully-populated article before it is stored.
// The slug must already be set; generation happens upstream.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&a.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&a.Category,
			validation.Required.Error("category_required"),
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&a.Author,
			validation.Required.Error("author_required"),
		),
		validation.Field(&a.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatuses...).Error("invalid_status"),
		),
		validation.Field(&a.ReadTime,
			validation.Min(1).Error("read_time_must_be_positive"),
		),
	)
}

// ValidateArticleUpdate validates the set fields of a partial update.
// Nil fields are untouched stored values and are not checked here.
func (v *Validator) ValidateArticleUpdate(u *domain.ArticleUpdate) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Title,
			validation.NilOrNotEmpty.Error("title_cannot_be_empty"),
		),
		validation.Field(&u.Slug,
			validation.NilOrNotEmpty.Error("slug_cannot_be_empty"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&u.Content,
			validation.NilOrNotEmpty.Error("content_cannot_be_empty"),
		),
		validation.Field(&u.Category,
			validation.NilOrNotEmpty.Error("category_cannot_be_empty"),
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&u.Author,
			validation.NilOrNotEmpty.Error("author_cannot_be_empty"),
		),
		validation.Field(&u.Status,
			validation.NilOrNotEmpty.Error("status_cannot_be_empty"),
			validation.In(validStatuses...).Error("invalid_status"),
		),
		validation.Field(&u.ReadTime,
			validation.Min(1).Error("read_time_must_be_positive"),
		),
	)
}

// ValidateComment validates a Comment entity.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Author,
			validation.Required.Error("author_required"),
		),
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
			validation.By(wordCountRule(500)),
		),
		validation.Field(&c.ArticleID,
			validation.Required.Error("article_id_required"),
		),
	)
}

// ValidateEmail validates a newsletter signup address.
func (v *Validator) ValidateEmail(email string) error {
	return validation.Validate(email,
		validation.Required.Error("email_required"),
		is.Email.Error("invalid_email_format"),
	)
}

// ValidateCredentials validates a login request's shape.
func (v *Validator) ValidateCredentials(username, password string) error {
	if err := validation.Validate(username, validation.Required.Error("username_required")); err != nil {
		return validation.Errors{"username": err}
	}
	if err := validation.Validate(password, validation.Required.Error("password_required")); err != nil {
		return validation.Errors{"password": err}
	}
	return nil
}

// ValidateSearchQuery rejects queries too short to search for. The
// repository itself performs no length check.
func (v *Validator) ValidateSearchQuery(query string) error {
	if len([]rune(strings.TrimSpace(query))) < 2 {
		return validation.Errors{
			"q": validation.NewError("query_too_short", "query must be at least 2 characters"),
		}
	}
	return nil
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		wordCount := len(strings.Fields(strings.TrimSpace(s)))
		if wordCount > maxWords {
			return validation.NewError("content_exceeds_500_words", "content exceeds 500 words")
		}
		return nil
	}
}
