package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/htetarkarhlaing/share-book-api/internal/pkg/jwt"
)

func testTokens() *jwtpkg.Manager {
	return jwtpkg.NewManager(jwtpkg.Config{
		AccessSecret:       "access-secret",
		RefreshSecret:      "refresh-secret",
		MultiPurposeSecret: "multi-purpose-secret",
		AdminAccessSecret:  "admin-secret",
		AccessTTL:          time.Hour,
		RefreshTTL:         time.Hour,
		ResetTTL:           time.Hour,
	})
}

func guardedRouter(tokens *jwtpkg.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/user-only", RequireUser(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserID)})
	})
	r.GET("/admin-only", RequireAdmin(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"login_id": c.GetString(CtxAdminLoginID)})
	})
	return r
}

func TestRequireUser_ValidToken(t *testing.T) {
	tokens := testTokens()
	r := guardedRouter(tokens)

	access, _ := tokens.GenerateUserAccess("u1")
	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireUser_MissingHeader(t *testing.T) {
	r := guardedRouter(testTokens())

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_MalformedHeader(t *testing.T) {
	tokens := testTokens()
	r := guardedRouter(tokens)

	access, _ := tokens.GenerateUserAccess("u1")
	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", access) // no Bearer prefix
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_RejectsForeignDomainTokens(t *testing.T) {
	tokens := testTokens()
	r := guardedRouter(tokens)

	// Refresh, reset and admin tokens are all valid JWTs, but none of them
	// verify in the user-access domain.
	refresh, _ := tokens.GenerateUserRefresh("u1")
	reset, _ := tokens.GenerateReset("u1")
	admin, _ := tokens.GenerateAdminAccess("abc12345")

	for _, token := range []string{refresh, reset, admin} {
		req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	tokens := testTokens()
	r := guardedRouter(tokens)

	adminToken, _ := tokens.GenerateAdminAccess("abc12345")
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc12345")
}

func TestRequireAdmin_RejectsUserToken(t *testing.T) {
	tokens := testTokens()
	r := guardedRouter(tokens)

	access, _ := tokens.GenerateUserAccess("u1")
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"Bearer   abc  ", "abc", true},
		{"Bearer ", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}

		token, ok := ExtractBearerToken(c)
		assert.Equal(t, tc.ok, ok, "header %q", tc.header)
		assert.Equal(t, tc.want, token, "header %q", tc.header)
	}
}
