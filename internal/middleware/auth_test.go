package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *domain.TokenClaims
	err    error
}

func (s *stubVerifier) VerifyToken(tokenString string) (*domain.TokenClaims, error) {
	return s.claims, s.err
}

func authRouter(v middleware.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", middleware.AuthRequired(v), func(c *gin.Context) {
		claims := middleware.GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return router
}

func TestAuthRequired_ValidToken(t *testing.T) {
	router := authRouter(&stubVerifier{
		claims: &domain.TokenClaims{UserID: 1, Username: "admin", Role: "admin"},
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	router := authRouter(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_NotBearer(t *testing.T) {
	router := authRouter(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router := authRouter(&stubVerifier{err: errors.New("expired")})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer bad.token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAuthUser_ReturnsNilWhenNotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, middleware.GetAuthUser(c))
}
