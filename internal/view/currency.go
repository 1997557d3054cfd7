package view

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders stored numeric amounts as localized currency
// strings. Formatting is one-way: nothing produced here is ever parsed back
// into the model.
type PriceFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewPriceFormatter builds a formatter for the given BCP 47 locale and ISO
// 4217 currency code.
func NewPriceFormatter(locale, code string) (*PriceFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("view.NewPriceFormatter: parse locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("view.NewPriceFormatter: parse currency %q: %w", code, err)
	}

	return &PriceFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

func (f *PriceFormatter) Format(amount float64) string {
	return f.printer.Sprint(currency.NarrowSymbol(f.unit.Amount(amount)))
}
