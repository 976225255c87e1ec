// Package money parses and formats whole-unit currency amounts the way the
// store writes them: "." as the thousands separator, no decimals.
package money

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrInvalidPrice = errors.New("invalid price")
	ErrInvalidStock = errors.New("invalid stock")
)

var printer = message.NewPrinter(language.Indonesian)

// ParsePrice accepts a non-negative integer amount, optionally grouped with
// "." or "," (e.g. "5.000", "1,250,000").
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(".", "", ",", "").Replace(s)
	n, err := parseNonNegative(s)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return n, nil
}

// ParseStock accepts a plain non-negative integer.
func ParseStock(s string) (int64, error) {
	n, err := parseNonNegative(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidStock
	}
	return n, nil
}

func parseNonNegative(s string) (int64, error) {
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}

// Format renders n with "." thousands grouping, e.g. 1250000 -> "1.250.000".
func Format(n int64) string {
	return printer.Sprintf("%d", n)
}
