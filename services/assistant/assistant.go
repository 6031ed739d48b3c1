// Package assistant builds prompts for the itinerary planner and the chatbot
// and issues a single generative-text call for each request.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"travel_crm_go/services/i18n"
)

// DefaultBudget is the planner's initial budget in rupees
const DefaultBudget = 25000

var (
	ErrMissingFields = errors.New("city and days are required")
	ErrEmptyMessage  = errors.New("message is empty")
	ErrEmptyResponse = errors.New("generator returned no text")
)

// Generator is the generative-text boundary: one prompt in, one text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Default is the generator used by the HTTP handlers. It is set at startup.
var Default Generator

// ItineraryRequest is the planner form
type ItineraryRequest struct {
	City   string
	Days   string
	Budget int
}

// Validate checks that the planner can build a prompt
func (r ItineraryRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" || strings.TrimSpace(r.Days) == "" {
		return ErrMissingFields
	}
	return nil
}

// ItineraryPrompt builds the planner prompt. The answer is requested as short
// plain text so it can be displayed verbatim.
func ItineraryPrompt(req ItineraryRequest) string {
	budget := req.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	return fmt.Sprintf(`You're a professional travel assistant. Create a short and simple %s-day itinerary for a trip to %s with a ₹%d budget.
The itinerary should include:
• A few top attractions to visit.
• A brief suggestion for activities each day (1-2 activities).
• Affordable accommodation options (mention budget hotels or hostels).

Keep it short, under 150 words, and easy to follow. Avoid using markdown or any formatting, just plain text. No detailed descriptions, just essentials.`,
		strings.TrimSpace(req.Days), strings.TrimSpace(req.City), budget)
}

const productContext = `You are a helpful assistant for TravelCRM, a comprehensive CRM solution designed specifically for travel agencies and travel professionals.

Our key features include:
- Lead Management & Client Organization
- Trip Planning & Booking Calendar
- Automated Follow-ups & Email Sequences
- Client Notes & Preference Tracking
- Pipeline Tracking & Sales Analytics
- Real-time Dashboard & Analytics
- AI-Powered Itinerary Planning
- Mobile Apps for iOS & Android
- Integrations with Google Workspace, WhatsApp, Stripe, Gmail, etc.

Our pricing:
- Free Plan: Up to 50 contacts, basic CRM features, email support, mobile app access
- Pro Plan: $49/month (or $39/year), unlimited contacts, advanced analytics, automated workflows, priority support, API access
- Enterprise Plan: $99/month (or $79/year), everything in Pro plus white-label solution, dedicated account manager, custom development

We serve travel agencies, solo travel agents, group trip organizers, and corporate travel teams.

Answer the user's question about TravelCRM in a friendly, helpful, and professional manner. Keep responses concise but informative. If asked about something not related to travel or CRM, politely redirect the conversation back to how TravelCRM can help their travel business.`

// ChatPrompt wraps a visitor question in the product context
func ChatPrompt(question string) string {
	return productContext + "\n\nUser question: " + strings.TrimSpace(question)
}

// Result is what the page shows for one assistant call.
// Failed is true when Text is the fallback message.
type Result struct {
	Text   string
	Failed bool
}

// PlanItinerary issues one planner call. Generator failures are logged and
// replaced by the localized fallback; only validation errors are returned.
func PlanItinerary(ctx context.Context, gen Generator, req ItineraryRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	return call(ctx, gen, ItineraryPrompt(req), "planner.error", "itinerary"), nil
}

// Reply issues one chatbot call for a visitor message.
func Reply(ctx context.Context, gen Generator, message string) (Result, error) {
	if strings.TrimSpace(message) == "" {
		return Result{}, ErrEmptyMessage
	}
	return call(ctx, gen, ChatPrompt(message), "chatbot.unavailable", "chat"), nil
}

func call(ctx context.Context, gen Generator, prompt, fallbackKey, kind string) Result {
	fallback := Result{Text: i18n.T(ctx, fallbackKey), Failed: true}

	if gen == nil {
		log.Printf("[WARNING] No generator configured for %s request", kind)
		return fallback
	}

	// A response without any text part is malformed. Whitespace is content.
	text, err := gen.Generate(ctx, prompt)
	if err == nil && text == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		log.Printf("Error generating %s response: %v", kind, err)
		return fallback
	}
	return Result{Text: text}
}
