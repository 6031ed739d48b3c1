package handlers

import (
	"net/http"
	"net/mail"
	"travel_crm_go/config"
	"travel_crm_go/middleware"
	"travel_crm_go/services"
	"travel_crm_go/services/i18n"
	"travel_crm_go/templates/components"
	"travel_crm_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// RegisterHandler handles the signup modal form (HTMX). Nothing is stored;
// the sales inbox is notified and the registrant gets a welcome email.
func RegisterHandler(c echo.Context) error {
	ctx := c.Request().Context()
	cfg := c.Get("config").(*config.Config)

	company := sanitizeText(c.FormValue("company_name"))
	email := sanitizeText(c.FormValue("email"))

	retry := func(key string) error {
		c.Response().WriteHeader(http.StatusUnprocessableEntity)
		form := components.RegistrationForm(cfg.TurnstileSiteKey, company, email, i18n.T(ctx, key))
		return form.Render(ctx, c.Response().Writer)
	}

	if company == "" || !validEmail(email) {
		return retry("modal.invalid")
	}

	// Validate Turnstile CAPTCHA (if configured)
	if cfg.TurnstileSecretKey != "" {
		token := c.FormValue("cf-turnstile-response")
		valid, err := services.VerifyTurnstileToken(ctx, token, cfg.TurnstileSecretKey, c.RealIP())
		if err != nil || !valid {
			c.Logger().Warnf("Turnstile verification failed: %v", err)
			return retry("modal.verificationFailed")
		}
	}

	data := services.RegistrationEmailData{
		CompanyName: company,
		Email:       email,
		Language:    middleware.GetLocale(c),
		AppURL:      cfg.AppURL,
	}
	if cfg.SalesEmail != "" {
		services.SendEmailAsync(cfg, services.BuildRegistrationNotificationEmail(cfg.SalesEmail, data))
	}
	services.SendEmailAsync(cfg, services.BuildWelcomeEmail(data))

	c.Logger().Infof("Registration received for %s", company)

	component := partials.RegistrationSuccess(company, email)
	return component.Render(ctx, c.Response().Writer)
}

// validEmail accepts a bare address, not a display-name form
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
