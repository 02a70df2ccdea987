package valuation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a money amount as "$1,234.56". Negative amounts
// render as "-$1,234.56".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// FormatDate renders an instant as a short human date, e.g. "Jan 2, 2024".
func FormatDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}

// FormatDateISO renders an instant as an ISO-8601 UTC timestamp.
func FormatDateISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
