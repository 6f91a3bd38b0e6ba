// Package currency formats monetary amounts for the expense views.
package currency

import (
	"fmt"
	"strings"
)

// Format formats an amount in the given currency the way the upstream UI
// renders it: yen without decimals ("¥1,200"), euros in es-ES style
// ("1.200,50 €"). Unknown currency codes fall back to a generic rendering.
func Format(amount float64, code string) string {
	switch strings.ToUpper(code) {
	case "JPY", "":
		return FormatYen(amount)
	case "EUR":
		return fmt.Sprintf("%s €", groupThousands(fmt.Sprintf("%.2f", amount), ".", ","))
	default:
		return fmt.Sprintf("%s %s", groupThousands(fmt.Sprintf("%.2f", amount), ",", "."), strings.ToUpper(code))
	}
}

// FormatYen formats an amount as Japanese yen, e.g. "¥1,200"
func FormatYen(amount float64) string {
	return "¥" + groupThousands(fmt.Sprintf("%.0f", amount), ",", "")
}

// FormatYenCompact formats an amount with compact notation, e.g. "¥1.2K"
func FormatYenCompact(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("¥%.1fM", amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("¥%.1fK", amount/1000)
	}
	return FormatYen(amount)
}

// BudgetPercentage returns the share of budget spent, rounded to a whole
// percent. A zero budget yields zero.
func BudgetPercentage(spent, budget float64) int {
	if budget == 0 {
		return 0
	}
	return int(spent/budget*100 + 0.5)
}

// groupThousands inserts the thousands separator into a formatted number,
// replacing the decimal point with the given separator ("" keeps no
// decimals; the input must then carry none either).
func groupThousands(formatted, thousandsSep, decimalSep string) string {
	intPart := formatted
	fracPart := ""
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart = formatted[:idx]
		fracPart = formatted[idx+1:]
	}

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(thousandsSep)
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" && decimalSep != "" {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}
