package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"guesthouse-manager/models"
)

// ParseDate parses prompt/snapshot date text (DD-MM-YYYY).
func ParseDate(text string) (time.Time, error) {
	return time.Parse(models.DateLayout, text)
}

func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// FormatMoney renders an amount as "R$123.45". Rounding to two digits
// happens here and only here; stored amounts stay unrounded.
func FormatMoney(amount decimal.Decimal) string {
	return "R$" + amount.StringFixed(2)
}
