package assistant

import (
	"context"
	"errors"
	"os"
	"testing"
	"travel_crm_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func TestItineraryPrompt(t *testing.T) {
	prompt := ItineraryPrompt(ItineraryRequest{City: " Jaipur ", Days: "4", Budget: 40000})
	assert.Contains(t, prompt, "4-day itinerary for a trip to Jaipur with a ₹40000 budget")
	assert.Contains(t, prompt, "Avoid using markdown")

	prompt = ItineraryPrompt(ItineraryRequest{City: "Goa", Days: "2"})
	assert.Contains(t, prompt, "₹25000 budget")
}

func TestChatPrompt(t *testing.T) {
	prompt := ChatPrompt("  Do you have a free plan?  ")
	assert.Contains(t, prompt, "You are a helpful assistant for TravelCRM")
	assert.Contains(t, prompt, "Free Plan: Up to 50 contacts")
	assert.Contains(t, prompt, "User question: Do you have a free plan?")
}

func TestPlanItinerary(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingFields", func(t *testing.T) {
		gen := &fakeGenerator{text: "unused"}
		_, err := PlanItinerary(ctx, gen, ItineraryRequest{City: "Goa"})
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Empty(t, gen.prompts, "no call without a valid form")
	})

	t.Run("SuccessIsVerbatim", func(t *testing.T) {
		text := "Day 1: Amber Fort\n\n  Day 2: City Palace  \n"
		gen := &fakeGenerator{text: text}

		result, err := PlanItinerary(ctx, gen, ItineraryRequest{City: "Jaipur", Days: "2"})
		require.NoError(t, err)
		assert.Equal(t, text, result.Text)
		assert.False(t, result.Failed)
		assert.Len(t, gen.prompts, 1)
	})

	t.Run("FailureFallsBackOnce", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("network down")}

		result, err := PlanItinerary(ctx, gen, ItineraryRequest{City: "Jaipur", Days: "2"})
		require.NoError(t, err)
		assert.True(t, result.Failed)
		assert.Equal(t, "Oops! Couldn't fetch the plan. Try again later.", result.Text)
		assert.Len(t, gen.prompts, 1, "no retry")
	})

	t.Run("LocalizedFallback", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("boom")}
		hiCtx := i18n.WithLocale(ctx, "hi")

		result, err := PlanItinerary(hiCtx, gen, ItineraryRequest{City: "Jaipur", Days: "2"})
		require.NoError(t, err)
		assert.Equal(t, i18n.Translate("hi", "planner.error"), result.Text)
	})
}

func TestReply(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyMessage", func(t *testing.T) {
		_, err := Reply(ctx, &fakeGenerator{}, "   ")
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("Success", func(t *testing.T) {
		gen := &fakeGenerator{text: "Yes! Our Free Plan covers up to 50 contacts."}
		result, err := Reply(ctx, gen, "Is there a free plan?")
		require.NoError(t, err)
		assert.Equal(t, gen.text, result.Text)
	})

	t.Run("EmptyResponseFallsBack", func(t *testing.T) {
		result, err := Reply(ctx, &fakeGenerator{text: ""}, "Hello")
		require.NoError(t, err)
		assert.True(t, result.Failed)
		assert.Equal(t, i18n.Translate("en", "chatbot.unavailable"), result.Text)
	})

	t.Run("WhitespaceResponseIsVerbatim", func(t *testing.T) {
		result, err := Reply(ctx, &fakeGenerator{text: " \n\t "}, "Hello")
		require.NoError(t, err)
		assert.False(t, result.Failed)
		assert.Equal(t, " \n\t ", result.Text)
	})

	t.Run("NilGenerator", func(t *testing.T) {
		result, err := Reply(ctx, nil, "Hello")
		require.NoError(t, err)
		assert.True(t, result.Failed)
	})
}
