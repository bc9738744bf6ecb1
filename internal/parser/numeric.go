package parser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseDecimal converts vendor numeric text into an exact decimal.
//
// Estimating systems emit amounts with currency symbols, thousands
// separators and stray whitespace ("$1,234.50 "). Everything except digits,
// '.' and '-' is stripped before parsing; empty or still-unparseable input
// yields zero. This function never fails — a bad amount on one record must
// not abort the whole file.
func parseDecimal(raw string) decimal.Decimal {
	cleaned := sanitizeNumeric(raw)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseInt is the integer counterpart of parseDecimal, used for line numbers,
// model years and mileage. Fractions are truncated; garbage yields zero.
func parseInt(raw string) int {
	cleaned := sanitizeNumeric(raw)
	if i := strings.IndexByte(cleaned, '.'); i >= 0 {
		cleaned = cleaned[:i]
	}
	if cleaned == "" || cleaned == "-" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

func sanitizeNumeric(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
