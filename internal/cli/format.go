package cli

import (
	"time"

	"github.com/afonsocarlos/cofre/internal/model"

	"github.com/shopspring/decimal"
)

// DateFormat is the display layout for transaction dates.
const DateFormat = "2006-01-02"

// FormatAmount renders a monetary amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatSignedAmount renders an amount with an explicit sign and the
// kind's color: income green with a plus, expense red with a minus.
func FormatSignedAmount(kind model.Kind, amount decimal.Decimal) string {
	if kind == model.KindIncome {
		return IncomeStyle.Render("+" + FormatAmount(amount))
	}
	return ExpenseStyle.Render("-" + FormatAmount(amount))
}

// FormatDate renders a transaction date for display.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatCategoryLink renders a joined category name, or a subtle
// placeholder when the reference is dangling.
func FormatCategoryLink(link model.CategoryLink) string {
	if cat, ok := link.Category(); ok {
		return cat.Name
	}
	return SubtleStyle.Render("(missing)")
}

// CategoryName returns the plain category name for contexts that cannot
// carry styling, such as CSV columns.
func CategoryName(link model.CategoryLink) string {
	if cat, ok := link.Category(); ok {
		return cat.Name
	}
	return ""
}
