package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestEffectiveBudget(t *testing.T) {
	tests := []struct {
		name     string
		budget   *decimal.Decimal
		update   *CampaignUpdateRequest
		expected string
	}{
		{
			name:     "committed only",
			budget:   decPtr("1000"),
			expected: "1000",
		},
		{
			name:     "pending increase wins",
			budget:   decPtr("1000"),
			update:   &CampaignUpdateRequest{NewBudget: decPtr("1400")},
			expected: "1400",
		},
		{
			name:     "pending decrease does not lower the floor",
			budget:   decPtr("1000"),
			update:   &CampaignUpdateRequest{NewBudget: decPtr("400")},
			expected: "1000",
		},
		{
			name:     "no committed budget, pending only",
			update:   &CampaignUpdateRequest{NewBudget: decPtr("320")},
			expected: "320",
		},
		{
			name:     "update without budget change",
			budget:   decPtr("250"),
			update:   &CampaignUpdateRequest{},
			expected: "250",
		},
		{
			name:     "nothing set",
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{Pricing: Pricing{Budget: tt.budget}}
			got := c.EffectiveBudget(tt.update)
			require.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got)
		})
	}
}
