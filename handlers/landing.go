package handlers

import (
	"net/http"
	"time"
	"travel_crm_go/config"
	"travel_crm_go/middleware"
	"travel_crm_go/services"
	"travel_crm_go/services/assistant"
	"travel_crm_go/services/i18n"
	"travel_crm_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the marketing page in the request locale
func LandingHandler(c echo.Context) error {
	ctx := c.Request().Context()
	cfg := c.Get("config").(*config.Config)
	lang := middleware.GetLocale(c)

	vm := pages.LandingViewModel{
		Title:            i18n.T(ctx, "meta.title"),
		Lang:             lang,
		ToggleLang:       i18n.Toggle(lang),
		CSRFToken:        middleware.GetCSRFToken(c),
		Nonce:            middleware.GetNonce(ctx),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
		CSSURL:           middleware.AssetURL(ctx, "css/style.css"),
		ScriptURL:        middleware.AssetURL(ctx, "js/landing.js"),
		FaviconURL:       middleware.AssetURL(ctx, "images/favicon.png"),
		DefaultBudget:    assistant.DefaultBudget,
		Year:             time.Now().Year(),
		Content:          services.GetLandingContent(),
	}

	component := pages.Landing(vm)
	return component.Render(ctx, c.Response().Writer)
}

// SwitchLanguageHandler stores the chosen language. HTMX requests get the
// page re-rendered in place; plain requests are redirected home.
func SwitchLanguageHandler(c echo.Context) error {
	lang := c.Param("lang")
	if !i18n.IsSupported(lang) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported language")
	}

	middleware.SetLanguageCookie(c, lang)

	if c.Request().Header.Get("HX-Request") == "true" {
		c.Set("locale", lang)
		c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))
		return LandingHandler(c)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
