package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renders an amount as $#,##0.00, rounding half to even. The
// amount never passes through float64.
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.RoundBank(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	whole := rounded.Truncate(0).BigInt()

	// Amounts past int64 dollars are printed without grouping.
	digits := whole.String()
	if whole.IsInt64() {
		digits = usd.Sprintf("%d", whole.Int64())
	}
	return sign + "$" + digits + fixed[dot:]
}
