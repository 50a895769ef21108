package domain

import (
	"github.com/Rhymond/go-money"
)

// FormatCents renders minor units with the currency's symbol and grouping, e.g. "$1,234.56".
func FormatCents(cents int64, currencyCode string) string {
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}
	return money.New(cents, currencyCode).Display()
}
