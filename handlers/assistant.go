package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"travel_crm_go/models"
	"travel_crm_go/services/assistant"
	"travel_crm_go/services/i18n"
	"travel_crm_go/templates/partials"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ItineraryHandler plans a trip from the planner form (HTMX)
func ItineraryHandler(c echo.Context) error {
	ctx := c.Request().Context()

	req := assistant.ItineraryRequest{
		City: sanitizeText(c.FormValue("city")),
		Days: sanitizeText(c.FormValue("days")),
	}
	if budget, err := strconv.Atoi(c.FormValue("budget")); err == nil {
		req.Budget = budget
	}

	result, err := assistant.PlanItinerary(ctx, assistant.Default, req)
	if errors.Is(err, assistant.ErrMissingFields) {
		c.Response().WriteHeader(http.StatusUnprocessableEntity)
		return partials.ItineraryError(i18n.T(ctx, "planner.missingFields")).Render(ctx, c.Response().Writer)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to plan itinerary")
	}

	component := partials.ItineraryResult(result.Text, result.Failed)
	return component.Render(ctx, c.Response().Writer)
}

// ChatHandler answers one chatbot message (HTMX). The reply is appended
// below the visitor's message.
func ChatHandler(c echo.Context) error {
	ctx := c.Request().Context()

	message := sanitizeText(c.FormValue("message"))
	result, err := assistant.Reply(ctx, assistant.Default, message)
	if errors.Is(err, assistant.ErrEmptyMessage) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to answer")
	}

	question := models.ChatMessage{ID: uuid.New().String(), Text: message, FromUser: true}
	answer := models.ChatMessage{ID: uuid.New().String(), Text: result.Text, Failed: result.Failed}

	component := partials.ChatExchange(question, answer)
	return component.Render(ctx, c.Response().Writer)
}
