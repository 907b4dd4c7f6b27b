package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/logger"
	"github.com/rodgersmanaseh/cedy1/internal/middleware"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/service"
)

// ArticleHandler handles article-related HTTP requests, both the public
// reading surface and the authenticated admin surface.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status"`
	ReadTime      int      `json:"readTime"`
	ViewCount     int64    `json:"viewCount"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		ID:            a.ID,
		Title:         a.Title,
		Slug:          a.Slug,
		Excerpt:       a.Excerpt,
		Content:       a.Content,
		Category:      a.Category,
		Author:        a.Author,
		FeaturedImage: a.FeaturedImage,
		Tags:          tags,
		Status:        a.Status,
		ReadTime:      a.ReadTime,
		ViewCount:     a.ViewCount,
		CreatedAt:     a.CreatedAt.Format(TimeFormat),
		UpdatedAt:     a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, toArticleResponse(&articles[i]))
	}
	return out
}

// List handles GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	filter := domain.ArticleFilter{
		Category: c.Query("category"),
	}
	var err error
	if filter.Limit, err = parseIntQuery(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}
	if filter.Offset, err = parseIntQuery(c, "offset"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return
	}

	articles, err := h.articleService.List(c.Request.Context(), filter)
	if err != nil {
		h.serverError(c, "list articles", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

// Featured handles GET /api/articles/featured
func (h *ArticleHandler) Featured(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	articles, err := h.articleService.Featured(c.Request.Context(), limit)
	if err != nil {
		h.serverError(c, "featured articles", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

// Search handles GET /api/articles/search
func (h *ArticleHandler) Search(c *gin.Context) {
	articles, err := h.articleService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.serverError(c, "search articles", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

// Read handles GET /api/articles/:slug
func (h *ArticleHandler) Read(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.articleService.Read(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.serverError(c, "read article", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// AdminList handles GET /api/admin/articles
func (h *ArticleHandler) AdminList(c *gin.Context) {
	filter := domain.ArticleFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	if filter.Status != "" && filter.Status != "all" && !domain.IsValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: draft, published, all"})
		return
	}
	var err error
	if filter.Limit, err = parseIntQuery(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}
	if filter.Offset, err = parseIntQuery(c, "offset"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return
	}
	if filter.Status == "" {
		// Admins see everything unless they narrow the filter.
		filter.Status = "all"
	}

	articles, err := h.articleService.List(c.Request.Context(), filter)
	if err != nil {
		h.serverError(c, "list articles", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

// AdminGet handles GET /api/admin/articles/:id
func (h *ArticleHandler) AdminGet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.serverError(c, "get article", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Create handles POST /api/admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var input service.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "an article with this slug already exists"})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.serverError(c, "create article", err)
		}
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// articleUpdateRequest carries the optional fields of a partial update.
type articleUpdateRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	Category      *string   `json:"category"`
	Author        *string   `json:"author"`
	FeaturedImage *string   `json:"featuredImage"`
	Tags          *[]string `json:"tags"`
	Status        *string   `json:"status"`
	ReadTime      *int      `json:"readTime"`
}

// Update handles PUT /api/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req articleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	update := domain.ArticleUpdate{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		Tags:          req.Tags,
		Status:        req.Status,
		ReadTime:      req.ReadTime,
	}

	article, err := h.articleService.Update(c.Request.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case errors.Is(err, service.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "an article with this slug already exists"})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.serverError(c, "update article", err)
		}
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /api/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.serverError(c, "delete article", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) serverError(c *gin.Context, op string, err error) {
	logger.Error(op+" failed",
		"request_id", middleware.GetRequestID(c),
		"error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func parseIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return n, nil
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
