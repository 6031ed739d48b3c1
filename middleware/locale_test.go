package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"travel_crm_go/config"
	"travel_crm_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runLocale(t *testing.T, req *http.Request, cfg *config.Config) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Locale(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return c, rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLocale(t *testing.T) {
	cfg := &config.Config{Environment: "development"}

	t.Run("PriorityQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=hi", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		c, rec := runLocale(t, req, cfg)

		assert.Equal(t, "hi", c.Get("locale"))
		cookie := findCookie(rec, "lang")
		if assert.NotNil(t, cookie) {
			assert.Equal(t, "hi", cookie.Value)
		}
	})

	t.Run("UnsupportedQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
		c, rec := runLocale(t, req, cfg)

		assert.Equal(t, "en", c.Get("locale"))
		cookie := findCookie(rec, "lang")
		if assert.NotNil(t, cookie) {
			assert.Equal(t, "en", cookie.Value)
		}
	})

	t.Run("PriorityCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "hi"})
		req.Header.Set("Accept-Language", "en-US")
		c, _ := runLocale(t, req, cfg)

		assert.Equal(t, "hi", c.Get("locale"))
	})

	t.Run("PriorityHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR;q=0.9, hi-IN, en;q=0.5")
		c, _ := runLocale(t, req, cfg)

		assert.Equal(t, "hi", c.Get("locale"))
	})

	t.Run("DefaultLanguage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, _ := runLocale(t, req, cfg)

		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("RequestContext", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/?lang=hi", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		handler := Locale(cfg)(func(c echo.Context) error {
			assert.Equal(t, "hi", i18n.GetLocale(c.Request().Context()))
			return c.NoContent(http.StatusOK)
		})
		assert.NoError(t, handler(c))
	})
}

func TestSetLanguageCookie(t *testing.T) {
	e := echo.New()

	t.Run("Development", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.Set("config", &config.Config{Environment: "development"})

		SetLanguageCookie(c, "hi")

		cookie := findCookie(rec, "lang")
		if assert.NotNil(t, cookie) {
			assert.Equal(t, "hi", cookie.Value)
			assert.False(t, cookie.Secure)
		}
	})

	t.Run("Production", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.Set("config", &config.Config{Environment: "production"})

		SetLanguageCookie(c, "en")

		cookie := findCookie(rec, "lang")
		if assert.NotNil(t, cookie) {
			assert.True(t, cookie.Secure)
		}
	})
}

func TestGetLocale(t *testing.T) {
	e := echo.New()

	t.Run("WithLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("locale", "hi")
		assert.Equal(t, "hi", GetLocale(c))
	})

	t.Run("WithoutLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "en", GetLocale(c))
	})
}
