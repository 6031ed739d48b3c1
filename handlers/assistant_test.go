package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"travel_crm_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryHandler(t *testing.T) {
	t.Run("MissingFields", func(t *testing.T) {
		gen := &fakeGenerator{text: "unused"}
		useGenerator(t, gen)
		c, rec := setupForm("/itinerary", url.Values{"city": {"Jaipur"}})

		require.NoError(t, ItineraryHandler(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), i18n.Translate("en", "planner.missingFields"))
		assert.Empty(t, gen.prompts)
	})

	t.Run("Success", func(t *testing.T) {
		gen := &fakeGenerator{text: "Day 1: Amber Fort\n\nDay 2: Hawa Mahal"}
		useGenerator(t, gen)
		c, rec := setupForm("/itinerary", url.Values{"city": {"<b>Jaipur</b>"}, "days": {"2"}, "budget": {"40000"}})

		require.NoError(t, ItineraryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Day 1: Amber Fort")
		assert.Contains(t, body, "Day 2: Hawa Mahal")
		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "2-day itinerary for a trip to Jaipur with a ₹40000 budget")
	})

	t.Run("GeneratorFailure", func(t *testing.T) {
		useGenerator(t, &fakeGenerator{err: errors.New("quota exceeded")})
		c, rec := setupForm("/itinerary", url.Values{"city": {"Goa"}, "days": {"3"}})

		require.NoError(t, ItineraryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Couldn&#39;t fetch the plan")
		assert.Contains(t, rec.Body.String(), `role="alert"`)
	})
}

func TestChatHandler(t *testing.T) {
	t.Run("EmptyMessage", func(t *testing.T) {
		gen := &fakeGenerator{}
		useGenerator(t, gen)
		c, rec := setupForm("/chat", url.Values{"message": {"   "}})

		require.NoError(t, ChatHandler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, gen.prompts)
	})

	t.Run("Reply", func(t *testing.T) {
		useGenerator(t, &fakeGenerator{text: "The Free Plan covers up to 50 contacts."})
		c, rec := setupForm("/chat", url.Values{"message": {"Is there a <script>alert(1)</script>free plan?"}})

		require.NoError(t, ChatHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "free plan?")
		assert.Contains(t, body, "The Free Plan covers up to 50 contacts.")
		assert.Contains(t, body, "justify-end", "visitor bubble")
	})

	t.Run("Unavailable", func(t *testing.T) {
		useGenerator(t, nil)
		c, rec := setupForm("/chat", url.Values{"message": {"Hello"}})
		setLocale(c, "hi")

		require.NoError(t, ChatHandler(c))
		assert.Contains(t, rec.Body.String(), "bg-red-50")
	})
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Jaipur & Goa", sanitizeText("  <b>Jaipur</b> & Goa "))
	assert.Equal(t, "", sanitizeText("<img src=x onerror=alert(1)>"))
}
