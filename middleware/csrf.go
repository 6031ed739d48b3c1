package middleware

import (
	"net/http"
	"travel_crm_go/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CSRFHeader is sent by htmx on every request (see hx-headers on <body>)
const CSRFHeader = "X-CSRF-Token"

// CSRF protects the form endpoints. The token is accepted from the htmx
// header or the hidden form field.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:" + CSRFHeader + ",form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
		CookieSecure:   cfg.IsProduction(),
	})
}

// GetCSRFToken retrieves the CSRF token from the Echo context
func GetCSRFToken(c echo.Context) string {
	if token, ok := c.Get("csrf").(string); ok {
		return token
	}
	return ""
}
