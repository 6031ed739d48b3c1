package handlers

import (
	"net/http"
	"travel_crm_go/services/i18n"
	"travel_crm_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// SubscribeHandler handles the footer newsletter form (HTMX). Addresses are
// acknowledged and logged, not stored.
func SubscribeHandler(c echo.Context) error {
	ctx := c.Request().Context()

	email := sanitizeText(c.FormValue("email"))
	if !validEmail(email) {
		c.Response().WriteHeader(http.StatusUnprocessableEntity)
		return partials.NewsletterError(i18n.T(ctx, "footer.newsletter.invalid")).Render(ctx, c.Response().Writer)
	}

	c.Logger().Infof("Newsletter subscription for %s", email)

	return partials.NewsletterSubscribed().Render(ctx, c.Response().Writer)
}
