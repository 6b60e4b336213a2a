package pos

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency of the till.
const Currency = "INR"

// Money represents an exact monetary value in the till currency.
//
// Values are stored and summed at full precision; rounding happens
// only in the display forms (String, Amount2).
type Money struct {
	value decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Rupees creates a Money value from a numeric constant.
func Rupees[T float32 | float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParsePrice parses a strictly positive decimal amount, the only kind
// a menu item price can be.
func ParsePrice(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("invalid price %q: must be greater than zero", s)
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) MulQty(qty int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(qty)))}
}

// String returns the display form, rounded to whole currency units
// (bills and reports show whole rupees).
func (m Money) String() string {
	cur := *money.GetCurrency(Currency)
	cur.Fraction = 0
	return cur.Formatter().Format(m.value.Round(0).IntPart())
}

// Amount2 returns the amount with exactly two decimals, the form the
// UPI payment network requires.
func (m Money) Amount2() string { return m.value.StringFixed(2) }

// MarshalJSON persists the amount as a plain JSON number, at full
// precision.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
