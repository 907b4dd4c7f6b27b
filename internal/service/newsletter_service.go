package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/metrics"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

// NewsletterService validates signups and drives the subscription store.
type NewsletterService struct {
	subscriptions repository.NewsletterRepository
	validator     *validator.Validator
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(subscriptions repository.NewsletterRepository, v *validator.Validator) *NewsletterService {
	return &NewsletterService{
		subscriptions: subscriptions,
		validator:     v,
	}
}

// Subscribe validates the email and upserts the subscription. Addresses
// normalize to lowercase so Reader@x and reader@x are one record.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*domain.Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validator.ValidateEmail(email); err != nil {
		return nil, err
	}

	sub, err := s.subscriptions.Subscribe(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("subscribe %q: %w", email, err)
	}

	metrics.NewsletterSignups.Inc()
	return sub, nil
}

// Subscribers returns all active subscriptions.
func (s *NewsletterService) Subscribers(ctx context.Context) ([]domain.Subscription, error) {
	subs, err := s.subscriptions.Subscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}
