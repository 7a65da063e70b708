package stats

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is the sentinel rendered for a missing metric value.
const NotAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// FormatCount renders an integer metric with thousands grouping. The
// fractional part is truncated, not rounded.
func FormatCount(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	return printer.Sprintf("%d", int64(*v))
}

// FormatPercent renders a percentage metric to one decimal place.
// Rounding is half-to-even as implemented by strconv.
func FormatPercent(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	return strconv.FormatFloat(*v, 'f', 1, 64)
}
