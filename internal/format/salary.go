package format

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatSalary renders a range like "$120,000 - $160,000". Currencies that are
// not valid ISO 4217 codes are printed as a code prefix.
func FormatSalary(min, max int, code string) string {
	return amount(min, code) + " - " + amount(max, code)
}

func amount(value int, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%s %d", code, value)
	}
	return printer.Sprintf("%v%d", currency.Symbol(unit), value)
}
