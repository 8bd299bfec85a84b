package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
	"github.com/AbdulmosenAlmuzaini/malek/internal/utils"
)

const (
	testSecret     = "test-secret"
	testCookieName = "token"
)

func newAuthedRouter(roles ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api", middleware.AuthMiddleware(testSecret, testCookieName))
	group.GET("/protected", middleware.RequireRoles(roles...), func(c *gin.Context) {
		identity, _ := middleware.GetIdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})
	return r
}

func issueToken(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := utils.IssueSessionToken(&domain.User{UserID: 1, Name: "Tester", Role: role}, testSecret, time.Hour, "test")
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newAuthedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_TokenViaCookie(t *testing.T) {
	r := newAuthedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: issueToken(t, domain.RoleViewer)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_TokenViaBearerHeader(t *testing.T) {
	r := newAuthedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, domain.RoleViewer))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	r := newAuthedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: issueToken(t, domain.RoleViewer) + "x"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newAuthedRouter()

	token, err := utils.IssueSessionToken(&domain.User{UserID: 1, Role: domain.RoleAdmin}, testSecret, -time.Minute, "test")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_ViewerBlockedFromEntryRoutes(t *testing.T) {
	r := newAuthedRouter(domain.RoleEntry, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: issueToken(t, domain.RoleViewer)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_EntryAllowed(t *testing.T) {
	r := newAuthedRouter(domain.RoleEntry, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: issueToken(t, domain.RoleEntry)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_EmptyListAcceptsAnyAuthenticated(t *testing.T) {
	r := newAuthedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: issueToken(t, domain.RoleViewer)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
