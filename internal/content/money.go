package content

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an amount in US dollars with digit grouping, dropping
// the cents for whole amounts: 49 -> "$49", 1200.5 -> "$1,200.50".
func FormatPrice(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return pricePrinter.Sprintf("$%d", amount.IntPart())
	}
	return pricePrinter.Sprintf("$%.2f", amount.InexactFloat64())
}
