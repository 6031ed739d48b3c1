package models

// Highlight is a titled blurb used by the why-choose-us and features grids
type Highlight struct {
	Icon        string
	Title       string
	Description string
}

// Solution is one audience tab of the solutions section
type Solution struct {
	Slug        string
	Title       string
	Description string
	Features    []string
}

// PricingPlan is one card of the pricing section. Prices are USD per month.
type PricingPlan struct {
	Name         string
	Description  string
	MonthlyPrice int
	YearlyPrice  int // per month, billed yearly
	Features     []string
	Popular      bool
}

// Price returns the monthly price for the selected billing period
func (p PricingPlan) Price(yearly bool) int {
	if yearly {
		return p.YearlyPrice
	}
	return p.MonthlyPrice
}

// Testimonial is a customer quote
type Testimonial struct {
	Quote   string
	Author  string
	Role    string
	Company string
}

// FAQ is one question of the FAQ accordion
type FAQ struct {
	Question string
	Answer   string
}

// Integration is a logo in the integrations strip. NameKey is an i18n key.
type Integration struct {
	NameKey string
	Logo    string
}

// Stat is a headline number of the final call-to-action
type Stat struct {
	Value    string
	LabelKey string
}

// ChatMessage is one bubble of the chatbot conversation
type ChatMessage struct {
	ID       string
	Text     string
	FromUser bool
	Failed   bool
}

// LandingContent is the static copy of the landing page sections
type LandingContent struct {
	WhyChooseUs  []Highlight
	Features     []Highlight
	Solutions    []Solution
	Plans        []PricingPlan
	Testimonials []Testimonial
	FAQs         []FAQ
	Integrations []Integration
	Stats        []Stat
}
