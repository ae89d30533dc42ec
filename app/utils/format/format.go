package format

import (
	"time"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var currency = accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."}

// Currency renders a money amount for display, e.g. $1,234.50.
func Currency(amount decimal.Decimal) string {
	return currency.FormatMoneyDecimal(amount)
}

// Date renders a date value as month/day/year, empty for nil.
func Date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("01/02/2006")
}

// Score renders a user score with one decimal place.
func Score(score decimal.Decimal) string {
	return score.StringFixed(1)
}
