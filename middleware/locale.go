package middleware

import (
	"net/http"
	"strings"
	"time"
	"travel_crm_go/config"
	"travel_crm_go/services/i18n"

	"github.com/labstack/echo/v4"
)

const langCookieName = "lang"

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("en")
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				lang = i18n.Normalize(lang)
				c.SetCookie(newLanguageCookie(lang, cfg != nil && cfg.IsProduction()))
			} else if cookie, err := c.Cookie(langCookieName); err == nil {
				lang = i18n.Normalize(cookie.Value)
			}

			if lang == "" {
				lang = fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			// Echo context for handlers, request context for templ components
			c.Set("locale", lang)
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))

			return next(c)
		}
	}
}

// fromAcceptLanguage picks the first supported primary tag of the header
func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if i18n.IsSupported(primary) {
			return primary
		}
	}
	return i18n.Supported[0]
}

func newLanguageCookie(lang string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     langCookieName,
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour), // 1 year
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

// SetLanguageCookie sets the language cookie
func SetLanguageCookie(c echo.Context, lang string) {
	cfg, ok := c.Get("config").(*config.Config)
	c.SetCookie(newLanguageCookie(i18n.Normalize(lang), ok && cfg.IsProduction()))
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return i18n.Supported[0]
}
