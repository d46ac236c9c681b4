package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyValue is returned when a numeric conversion receives no value.
var ErrEmptyValue = errors.New("empty value")

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToDecimal converts a raw cell value to an exact decimal.
// Strings are parsed verbatim so "19.90" never passes through a float.
func ToDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case nil:
		return decimal.Zero, ErrEmptyValue
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, ErrEmptyValue
		}
		return *v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case uint:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return parseDecimal(strconv.FormatUint(v, 10))
	case uint32:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case string:
		return parseDecimal(v)
	case []byte:
		return parseDecimal(string(v))
	default:
		return parseDecimal(fmt.Sprintf("%v", v))
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyValue
	}
	return decimal.NewFromString(s)
}
