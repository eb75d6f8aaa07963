package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/htetarkarhlaing/share-book-api/internal/pkg/blacklist"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/response"
)

// Routes that never carry a session token and bypass the revocation check
// unconditionally.
var excludedRoutes = map[string]struct{}{
	"/api/user/login":     {},
	"/api/user/register":  {},
	"/api/user/confirm":   {},
	"/api/admin/login":    {},
	"/api/admin/register": {},
}

// TokenBlacklist runs before both guards. A bearer token revoked at logout
// is rejected here on every later request, regardless of its remaining
// signature validity, until the process restarts.
func TokenBlacklist(users, admins *blacklist.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, excluded := excludedRoutes[path]; excluded || path == "/" || strings.HasPrefix(path, "/docs") {
			c.Next()
			return
		}

		token, ok := ExtractBearerToken(c)
		if ok && (users.Contains(token) || admins.Contains(token)) {
			response.AbortUnauthorized(c, "Token is invalid")
			return
		}

		c.Next()
	}
}
