// Package middleware contain utilities middleware code
package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/hamedazad/synurix/internal/auth"
	"github.com/hamedazad/synurix/internal/utilities"
)

// LoginPath is where unauthenticated admin page requests are sent.
const LoginPath = "/admin/login"

// RequireAdminSession guards admin page routes. A request without a valid
// session cookie is redirected to the login route with the originally
// requested path preserved in the redirect query parameter.
func RequireAdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.SessionFromRequest(c); err != nil {
			target := LoginPath + "?redirect=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminAPI guards the JSON endpoints the admin view consumes. API
// callers get a 401 envelope instead of a redirect.
func RequireAdminAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.SessionFromRequest(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.Fail("Authentication required"))
			return
		}
		c.Next()
	}
}
