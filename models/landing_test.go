package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingPlanPrice(t *testing.T) {
	plan := PricingPlan{MonthlyPrice: 49, YearlyPrice: 39}
	assert.Equal(t, 49, plan.Price(false))
	assert.Equal(t, 39, plan.Price(true))
}
