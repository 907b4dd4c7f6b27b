package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/logger"
	"github.com/rodgersmanaseh/cedy1/internal/middleware"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"articleId"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Approved  bool   `json:"approved"`
	CreatedAt string `json:"createdAt"`
}

// toCommentResponse converts a domain.Comment to a CommentResponse.
func toCommentResponse(cm *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        cm.ID,
		ArticleID: cm.ArticleID,
		Author:    cm.Author,
		Content:   cm.Content,
		Approved:  cm.Approved,
		CreatedAt: cm.CreatedAt.Format(TimeFormat),
	}
}

type commentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ListForArticle handles GET /api/articles/:slug/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	comments, err := h.commentService.ListBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.serverError(c, "list comments", err)
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/articles/:slug/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.commentService.AddToSlug(c.Request.Context(), c.Param("slug"), req.Author, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.serverError(c, "create comment", err)
		}
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Approve handles POST /api/admin/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		h.serverError(c, "approve comment", err)
		return
	}

	c.JSON(http.StatusOK, toCommentResponse(comment))
}

func (h *CommentHandler) serverError(c *gin.Context, op string, err error) {
	logger.Error(op+" failed",
		"request_id", middleware.GetRequestID(c),
		"error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
