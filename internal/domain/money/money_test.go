package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"5", "R$ 5,00"},
		{"999.9", "R$ 999,90"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-45.5", "-R$ 45,50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestShare(t *testing.T) {
	assert.True(t, Share(decimal.NewFromInt(1), decimal.Zero).IsZero())
	assert.Equal(t, "33.3", Share(decimal.NewFromInt(1), decimal.NewFromInt(3)).String())
	assert.Equal(t, "66.7", Share(decimal.NewFromInt(2), decimal.NewFromInt(3)).String())
}

func TestPercentOfAndRatio(t *testing.T) {
	assert.Equal(t, "12.35", PercentOf(decimal.RequireFromString("123.45"), decimal.NewFromInt(10)).String())
	assert.True(t, Ratio(decimal.NewFromInt(10), decimal.Zero).IsZero())
	assert.Equal(t, "3.33", Ratio(decimal.NewFromInt(10), decimal.NewFromInt(3)).String())
}

func TestFromFloatAndSum(t *testing.T) {
	assert.Equal(t, "0.3", Sum(FromFloat(0.1), FromFloat(0.2)).String())
	assert.Equal(t, "12.5", FormatPercent(FromFloat(12.5)))
}

func TestCents(t *testing.T) {
	assert.Equal(t, "0.03", Cents(decimal.RequireFromString("0.025")).String())
	assert.Equal(t, "-0.03", Cents(decimal.RequireFromString("-0.025")).String())
	assert.Equal(t, "R$ 0,03", FormatBRL(decimal.RequireFromString("0.025")))
}
