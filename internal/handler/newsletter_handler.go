package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/logger"
	"github.com/rodgersmanaseh/cedy1/internal/middleware"
	"github.com/rodgersmanaseh/cedy1/internal/service"
)

// NewsletterHandler handles newsletter HTTP requests.
type NewsletterHandler struct {
	newsletterService service.NewsletterServiceInterface
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletterService service.NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

// SubscriptionResponse represents a newsletter subscription in the API response.
type SubscriptionResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
	CreatedAt  string `json:"createdAt"`
}

func toSubscriptionResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:         s.ID,
		Email:      s.Email,
		Subscribed: s.Subscribed,
		CreatedAt:  s.CreatedAt.Format(TimeFormat),
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("newsletter subscribe failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, toSubscriptionResponse(sub))
}

// Subscribers handles GET /api/admin/newsletter/subscribers
func (h *NewsletterHandler) Subscribers(c *gin.Context) {
	subs, err := h.newsletterService.Subscribers(c.Request.Context())
	if err != nil {
		logger.Error("list subscribers failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubscriptionResponse(&subs[i]))
	}
	c.JSON(http.StatusOK, out)
}
