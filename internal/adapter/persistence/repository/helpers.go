package repository

import (
	"os"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Amounts are stored as strings so DynamoDB round-trips them exactly; a nil
// pointer maps to the empty string (attribute omitted) and back.
func decimalToString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func decimalFromString(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
