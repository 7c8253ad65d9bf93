package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale matches the storefront's single supported locale.
const DefaultLocale = "en-IN"

// Formatter renders amounts the way the storefront's locale groups digits.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter falls back to DefaultLocale when locale does not parse.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Amount formats v with grouping separators and at most three fraction digits.
func (f *Formatter) Amount(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// Int formats an integer count, e.g. a quantity.
func (f *Formatter) Int(v int) string {
	return f.printer.Sprintf("%v", number.Decimal(v))
}
