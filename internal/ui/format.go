package ui

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// idPrinter applies Indonesian digit grouping ("15.000").
var idPrinter = message.NewPrinter(language.Indonesian)

// FormatCurrency renders an integer rupiah amount as "Rp15.000": no decimal
// places, Indonesian grouping, fixed currency symbol.
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return "-" + FormatCurrency(-amount)
	}
	return "Rp" + idPrinter.Sprintf("%d", amount)
}

// FormatNumber renders an integer with Indonesian digit grouping.
func FormatNumber(n int64) string {
	return idPrinter.Sprintf("%d", n)
}

// StatusText maps a status code to its display label. Codes outside 1..4
// yield "Unknown".
func StatusText(status int) string {
	switch status {
	case 1:
		return "Ready"
	case 2:
		return "Cancelled"
	case 3:
		return "Resend"
	case 4:
		return "Complete"
	default:
		return "Unknown"
	}
}

// StatusStyle maps a status code to its badge style token. Codes outside
// 1..4 yield the neutral token.
func StatusStyle(status int) string {
	switch status {
	case 1:
		return "green"
	case 2:
		return "red"
	case 3:
		return "yellow"
	case 4:
		return "blue"
	default:
		return "gray"
	}
}

// StatusIcon maps a status code to its badge icon name.
func StatusIcon(status int) string {
	switch status {
	case 1:
		return "clock"
	case 2:
		return "x-circle"
	case 3:
		return "rotate-ccw"
	case 4:
		return "check-circle"
	default:
		return "clock"
	}
}

// OperatorStyle maps an operator name (case-insensitive) to its badge style
// token. Unrecognized operators yield the neutral token.
func OperatorStyle(operator string) string {
	switch strings.ToLower(operator) {
	case "telkomsel":
		return "red"
	case "indosat":
		return "yellow"
	case "axis":
		return "purple"
	default:
		return "gray"
	}
}

// Capitalize upper-cases the first character of a display name.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
