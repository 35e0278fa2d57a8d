package money

import (
	"fmt"
	"strings"
)

// symbols for the currencies the marketplace actually lists in.
// Unknown codes render as "CODE 12.34".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"MXN": "$",
}

// Format renders an integer minor-unit amount as a display string with two
// decimal places, e.g. Format(8500, "USD") == "$85.00". Amounts are never
// represented as floats anywhere upstream; division happens only here, at
// the display boundary.
func Format(amountCents int64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}

	negative := amountCents < 0
	if negative {
		amountCents = -amountCents
	}

	units := amountCents / 100
	cents := amountCents % 100

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	if sym, ok := symbols[currency]; ok {
		b.WriteString(sym)
	} else {
		b.WriteString(currency)
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "%d.%02d", units, cents)
	return b.String()
}
