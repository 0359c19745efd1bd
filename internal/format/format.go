// Package format renders report values for human-facing output such as
// CSV exports. Numbers follow en-US conventions: grouped thousands,
// whole-dollar currency, percentages with one decimal place.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Absent is rendered where a value does not apply.
const Absent = "—"

var printer = message.NewPrinter(language.AmericanEnglish)

// Money renders a dollar amount with grouped thousands and no cents.
func Money(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// Number renders a numeric value with grouped thousands and at most
// three decimal places.
func Number(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// Percent renders a ratio (0..1) as a percentage with one decimal place.
func Percent(v float64) string {
	return printer.Sprintf("%v%%", number.Decimal(v*100, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
}

// Efficiency renders a time-weighted efficiency score with three decimal
// places and no grouping.
func Efficiency(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(3), number.MaxFractionDigits(3), number.NoSeparator()))
}

// Ratio renders a sell-through ratio with two decimal places.
func Ratio(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
