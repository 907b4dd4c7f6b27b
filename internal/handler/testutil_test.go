package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rodgersmanaseh/cedy1/internal/middleware"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/service"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires the full stack over in-memory stores, mirroring the
// production router so tests exercise real routing and auth.
type testEnv struct {
	router   *gin.Engine
	articles *service.ArticleService
	comments *service.CommentService
	auth     *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	articleRepo := repository.NewMemoryArticleRepository()
	userRepo := repository.NewMemoryUserRepository()
	commentRepo := repository.NewMemoryCommentRepository()
	newsletterRepo := repository.NewMemoryNewsletterRepository()

	v := validator.NewValidator()
	articleService := service.NewArticleService(articleRepo, v)
	authService := service.NewAuthService(userRepo, v, "test-secret", time.Hour)
	commentService := service.NewCommentService(commentRepo, articleRepo, v)
	newsletterService := service.NewNewsletterService(newsletterRepo, v)

	_, err := authService.CreateUser(context.Background(), "admin", "s3cure-pass", "admin")
	require.NoError(t, err)

	articleHandler := NewArticleHandler(articleService)
	authHandler := NewAuthHandler(authService)
	commentHandler := NewCommentHandler(commentService)
	newsletterHandler := NewNewsletterHandler(newsletterService)

	router := gin.New()
	api := router.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/featured", articleHandler.Featured)
			articles.GET("/search", articleHandler.Search)
			articles.GET("/:slug", articleHandler.Read)
			articles.GET("/:slug/comments", commentHandler.ListForArticle)
			articles.POST("/:slug/comments", commentHandler.Create)
		}

		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.POST("/auth/login", authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(authService))
		{
			admin.GET("/articles", articleHandler.AdminList)
			admin.POST("/articles", articleHandler.Create)
			admin.GET("/articles/:id", articleHandler.AdminGet)
			admin.PUT("/articles/:id", articleHandler.Update)
			admin.DELETE("/articles/:id", articleHandler.Delete)
			admin.GET("/newsletter/subscribers", newsletterHandler.Subscribers)
			admin.POST("/comments/:id/approve", commentHandler.Approve)
		}
	}

	return &testEnv{
		router:   router,
		articles: articleService,
		comments: commentService,
		auth:     authService,
	}
}

// login returns a valid bearer token for the seeded admin.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	result, err := e.auth.Login(context.Background(), "admin", "s3cure-pass")
	require.NoError(t, err)
	return result.Token
}

// do performs a request against the test router, marshalling body to
// JSON when non-nil and attaching token as a Bearer header when set.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// seedArticle publishes an article directly through the service.
func (e *testEnv) seedArticle(t *testing.T, input service.ArticleInput) *ArticleResponse {
	t.Helper()
	created, err := e.articles.Create(context.Background(), input)
	require.NoError(t, err)
	resp := toArticleResponse(created)
	return &resp
}

func publishedInput(title string) service.ArticleInput {
	return service.ArticleInput{
		Title:    title,
		Excerpt:  "County assemblies debate the new revenue sharing formula.",
		Content:  "The debate over the revenue sharing formula continued today as county assemblies weighed in on the proposal.",
		Category: "politics",
		Author:   "Jane Wanjiru",
		Status:   "published",
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
