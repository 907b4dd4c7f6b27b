package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

func newNewsletterService() *NewsletterService {
	return NewNewsletterService(repository.NewMemoryNewsletterRepository(), validator.NewValidator())
}

func TestNewsletterServiceSubscribeNormalizesEmail(t *testing.T) {
	svc := newNewsletterService()

	first, err := svc.Subscribe(context.Background(), "  Reader@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", first.Email)

	second, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	subs, err := svc.Subscribers(context.Background())
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestNewsletterServiceRejectsInvalidEmail(t *testing.T) {
	svc := newNewsletterService()

	_, err := svc.Subscribe(context.Background(), "not-an-email")
	assert.Error(t, err)

	_, err = svc.Subscribe(context.Background(), "")
	assert.Error(t, err)
}
