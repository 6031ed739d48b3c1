package partials

import (
	"bytes"
	"context"
	"html"
	"os"
	"strings"
	"testing"
	"travel_crm_go/models"
	"travel_crm_go/services/i18n"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestItineraryResult(t *testing.T) {
	ctx := i18n.WithLocale(context.Background(), "en")

	t.Run("TextIsVerbatim", func(t *testing.T) {
		text := "  Day 1:\tLouvre    and  Seine\n\n\nDay 2:  Montmartre\n"
		out := render(t, ctx, ItineraryResult(text, false))

		assert.Contains(t, out, `<div class="mt-6 text-white/90 whitespace-pre-wrap" data-itinerary-text>`+text+`</div>`)
		assert.Equal(t, 1, strings.Count(out, "data-itinerary-text"))
		assert.NotContains(t, out, "<p")
		assert.Contains(t, out, i18n.Translate("en", "planner.resultTitle"))
		assert.Contains(t, out, `href="#planner"`)
	})

	t.Run("TextIsEscaped", func(t *testing.T) {
		out := render(t, ctx, ItineraryResult(`<script>alert("x")</script> & more`, false))

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; more")
	})

	t.Run("Failed", func(t *testing.T) {
		out := render(t, ctx, ItineraryResult("Unable to generate itinerary.", true))

		assert.Contains(t, out, `role="alert">Unable to generate itinerary.</div>`)
		assert.NotContains(t, out, "data-itinerary-text")
		assert.NotContains(t, out, i18n.Translate("en", "planner.resultTitle"))
	})
}

func TestItineraryError(t *testing.T) {
	out := render(t, context.Background(), ItineraryError("Days must be between 1 and 30"))
	assert.Equal(t, `<p class="p-4 rounded-xl bg-yellow-400/10 text-yellow-200" role="alert">Days must be between 1 and 30</p>`, out)
}

func TestChatExchange(t *testing.T) {
	question := models.ChatMessage{ID: "q1", Text: "How much?", FromUser: true}
	answer := models.ChatMessage{ID: "a1", Text: "Plans start at\n  $29", Failed: false}

	out := render(t, context.Background(), ChatExchange(question, answer))

	qi := strings.Index(out, `id="msg-q1"`)
	ai := strings.Index(out, `id="msg-a1"`)
	require.NotEqual(t, -1, qi)
	require.NotEqual(t, -1, ai)
	assert.Less(t, qi, ai)
	assert.Contains(t, out, ">Plans start at\n  $29</p>")
	assert.Contains(t, out, "justify-end")
	assert.Contains(t, out, "justify-start")
}

func TestChatExchangeFailedReply(t *testing.T) {
	question := models.ChatMessage{ID: "q2", Text: "hi", FromUser: true}
	answer := models.ChatMessage{ID: "a2", Text: "Sorry, try again.", Failed: true}

	out := render(t, context.Background(), ChatExchange(question, answer))
	assert.Contains(t, out, "bg-red-50 text-red-700")
}

func TestRegistrationSuccess(t *testing.T) {
	ctx := i18n.WithLocale(context.Background(), "en")
	out := render(t, ctx, RegistrationSuccess("Acme <Travel>", "ops@acme.test"))

	assert.Contains(t, out, `role="status"`)
	assert.Contains(t, out, "Acme &lt;Travel&gt;")
	assert.Contains(t, out, "ops@acme.test")
	assert.Contains(t, out, "data-dismiss-modal")
	assert.Contains(t, out, ">"+i18n.Translate("en", "modal.close")+"</button>")
}

func TestNewsletterPartials(t *testing.T) {
	ctx := i18n.WithLocale(context.Background(), "hi")

	out := render(t, ctx, NewsletterSubscribed())
	assert.Contains(t, out, "data-flash")
	assert.Contains(t, out, "✓ "+html.EscapeString(i18n.Translate("hi", "footer.newsletter.success")))

	out = render(t, ctx, NewsletterError(i18n.Translate("hi", "footer.newsletter.invalid")))
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, i18n.Translate("hi", "footer.newsletter.invalid"))
	assert.NotContains(t, out, "data-flash")
}
