package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"travel_crm_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c, rec := setupForm("/subscribe", url.Values{"email": {"agent@yatra.test"}})

		require.NoError(t, SubscribeHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "data-flash")
		assert.Contains(t, rec.Body.String(), i18n.Translate("en", "footer.newsletter.success"))
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		c, rec := setupForm("/subscribe", url.Values{"email": {"agent"}})

		require.NoError(t, SubscribeHandler(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), i18n.Translate("en", "footer.newsletter.invalid"))
		assert.NotContains(t, rec.Body.String(), "data-flash")
	})

	t.Run("Localized", func(t *testing.T) {
		c, rec := setupForm("/subscribe", url.Values{})
		setLocale(c, "hi")

		require.NoError(t, SubscribeHandler(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), i18n.Translate("hi", "footer.newsletter.invalid"))
	})
}
