package handlers

import (
	"net/http"
	"testing"
	"travel_crm_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	t.Run("English", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)

		require.NoError(t, LandingHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `<html lang="en">`)
		assert.Contains(t, body, `data-typewriter="hero"`)
		assert.Contains(t, body, `data-section="finalCTA"`)
		assert.Contains(t, body, `id="signup-modal"`)
		assert.Contains(t, body, `href="/lang/hi"`)
		assert.Contains(t, body, "Grow Your Travel Business with TravelCRM")
		assert.Contains(t, body, `hx-post="/itinerary"`)
		assert.NotContains(t, body, "cf-turnstile", "no widget without a site key")
	})

	t.Run("Hindi", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		setLocale(c, "hi")

		require.NoError(t, LandingHandler(c))

		body := rec.Body.String()
		assert.Contains(t, body, `<html lang="hi">`)
		assert.Contains(t, body, `href="/lang/en"`)
		assert.Contains(t, body, i18n.Translate("hi", "finalCTA.signUp"))
	})

	t.Run("TurnstileWidget", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		cfg := testConfig()
		cfg.TurnstileSiteKey = "site-key"
		c.Set("config", cfg)

		require.NoError(t, LandingHandler(c))
		assert.Contains(t, rec.Body.String(), `data-sitekey="site-key"`)
	})
}

func TestSwitchLanguageHandler(t *testing.T) {
	t.Run("Redirect", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/lang/hi", nil)
		c.SetParamNames("lang")
		c.SetParamValues("hi")

		require.NoError(t, SwitchLanguageHandler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "lang=hi")
	})

	t.Run("HTMXRendersInPlace", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/lang/hi", nil)
		c.Request().Header.Set("HX-Request", "true")
		c.SetParamNames("lang")
		c.SetParamValues("hi")

		require.NoError(t, SwitchLanguageHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="hi">`)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/lang/fr", nil)
		c.SetParamNames("lang")
		c.SetParamValues("fr")

		err := SwitchLanguageHandler(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/health", nil)

	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLandingHandlerTitle(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	setLocale(c, "hi")

	require.NoError(t, LandingHandler(c))
	assert.Contains(t, rec.Body.String(), "<title>"+i18n.Translate("hi", "meta.title")+"</title>")
}
