package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hamedazad/synurix/internal/auth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.SECRET_KEY = "test-secret-key"
	m.Run()
}

func testRouter() *gin.Engine {
	r := gin.New()
	pages := r.Group("/admin")
	pages.Use(RequireAdminSession())
	pages.GET("", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "dashboard"}) })
	pages.GET("stats", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "stats"}) })

	api := r.Group("/api")
	api.Use(RequireAdminAPI())
	api.GET("careers", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) })
	return r
}

func sessionRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	token, err := auth.IssueSessionToken()
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	return req
}

func TestRequireAdminSessionRedirectsToLogin(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login?redirect=%2Fadmin", rec.Header().Get("Location"))
}

func TestRequireAdminSessionPreservesRequestedPath(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login?redirect=%2Fadmin%2Fstats", rec.Header().Get("Location"))
}

func TestRequireAdminSessionAcceptsValidCookie(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, sessionRequest(t, "/admin"))

	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
}

func TestRequireAdminSessionRejectsGarbageCookie(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRequireAdminAPIReturnsUnauthorizedJSON(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/careers", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Authentication required"}`, rec.Body.String())
}

func TestRequireAdminAPIAcceptsValidCookie(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, sessionRequest(t, "/api/careers"))

	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
}
