package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.5", "10.50"},
		{"0", "0.00"},
		{"1234.567", "1234.57"},
		{"-3", "-3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSignedAmount(t *testing.T) {
	income := FormatSignedAmount(model.KindIncome, decimal.NewFromInt(100))
	assert.True(t, strings.Contains(income, "+100.00"), "got %q", income)

	expense := FormatSignedAmount(model.KindExpense, decimal.NewFromInt(40))
	assert.True(t, strings.Contains(expense, "-40.00"), "got %q", expense)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-07", FormatDate(d))
}

func TestFormatCategoryLink(t *testing.T) {
	linked := model.LinkedCategory(model.Category{Name: "Rent"})
	assert.True(t, strings.Contains(FormatCategoryLink(linked), "Rent"))

	missing := FormatCategoryLink(model.MissingCategory())
	assert.True(t, strings.Contains(missing, "missing"), "got %q", missing)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Rent", CategoryName(model.LinkedCategory(model.Category{Name: "Rent"})))
	assert.Equal(t, "", CategoryName(model.MissingCategory()))
}
