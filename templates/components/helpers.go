package components

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"travel_crm_go/models"
	"travel_crm_go/services/i18n"
)

// loadingMessageKeys are the planner's rotating wait messages, in order
var loadingMessageKeys = []string{
	"planner.loadingMessages.packing",
	"planner.loadingMessages.stays",
	"planner.loadingMessages.gems",
	"planner.loadingMessages.memories",
}

// navItems are the in-page anchors of the header
var navItems = []string{"features", "solutions", "pricing", "faq"}

func switchLabel(ctx context.Context, toggleLang string) string {
	if toggleLang == "en" {
		return i18n.T(ctx, "nav.switchToEnglish")
	}
	return i18n.T(ctx, "nav.switchToHindi")
}

// budgetLabel splits the localized budget label around its amount
func budgetLabel(ctx context.Context) (before, after string) {
	label := i18n.T(ctx, "planner.budget")
	before, after, found := strings.Cut(label, "{budget}")
	if !found {
		return label + " ", ""
	}
	return before, after
}

func formatBudget(budget int) string {
	return strconv.Itoa(budget)
}

func planClass(plan models.PricingPlan) string {
	if plan.Popular {
		return "relative p-8 rounded-2xl bg-white border border-blue-600 ring-2 ring-blue-600"
	}
	return "relative p-8 rounded-2xl bg-white border border-gray-100"
}

func dollars(amount int) string {
	return fmt.Sprintf("$%d", amount)
}

// bubbleRowClass and bubbleClass style a chat message by sender and outcome
func bubbleRowClass(msg models.ChatMessage) string {
	if msg.FromUser {
		return "flex justify-end"
	}
	return "flex justify-start"
}

func bubbleClass(msg models.ChatMessage) string {
	base := "max-w-[85%] px-3 py-2 rounded-xl text-sm whitespace-pre-wrap "
	switch {
	case msg.FromUser:
		return base + "bg-blue-600 text-white"
	case msg.Failed:
		return base + "bg-red-50 text-red-700"
	default:
		return base + "bg-gray-100 text-gray-800"
	}
}

func rights(ctx context.Context, year int) string {
	return i18n.T(ctx, "footer.rights", map[string]interface{}{"year": strconv.Itoa(year)})
}
