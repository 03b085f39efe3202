package expenses

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayFraction is the number of decimals used when displaying amounts.
const displayFraction = 2

// displayFormatter and negativeFormatter print amounts with the real
// grapheme, but a locale independent dot decimal and no thousand separator:
// "R$1234.50", "R$-1.00". The sign always follows the grapheme.
var displayFormatter, negativeFormatter = newDisplayFormatters()

// maxCents is the largest amount, in cents, the formatters can print.
var maxCents = decimal.NewFromInt(math.MaxInt64)

func newDisplayFormatters() (positive, negative *money.Formatter) {
	// the Money constructor is the only way to get a never nil currency.
	brl := money.New(0, money.BRL).Currency()
	negativeTemplate := strings.Replace(brl.Template, "1", "-1", 1)
	positive = money.NewFormatter(displayFraction, ".", "", brl.Grapheme, brl.Template)
	negative = money.NewFormatter(displayFraction, ".", "", brl.Grapheme, negativeTemplate)
	return positive, negative
}

// Amount represents a signed monetary value. No currency is attached to it.
type Amount struct {
	value decimal.Decimal
}

// A is a convenient factory for Amount.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Amount{value: v}
	case float32:
		return Amount{value: decimal.NewFromFloat32(v)}
	case float64:
		return Amount{value: decimal.NewFromFloat(v)}
	case int:
		return Amount{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Amount{value: decimal.NewFromInt32(v)}
	case int64:
		return Amount{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseAmount parses a dot-decimal string like "4.50", "-12" or "1e3".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("empty amount")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: v}, nil
}

// Add returns the sum a+b.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }

// Equal reports whether a and b are the same value, whatever their number of
// digits: "4.5" equals "4.50".
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

// Exact returns the amount with all its digits, in the form used in the
// ledger file ("4.5", "-2", "0.125").
func (a Amount) Exact() string { return a.value.String() }

// String returns the display form of the amount, rounded to two decimals and
// prefixed by the currency grapheme: "R$4.50", "R$-1.00".
func (a Amount) String() string {
	rounded := a.value.Round(displayFraction)
	f := displayFormatter
	if rounded.IsNegative() {
		f = negativeFormatter
	}
	cents := rounded.Abs().Shift(displayFraction)
	if cents.GreaterThan(maxCents) {
		// beyond int64 cents, fill the template directly.
		s := strings.Replace(f.Template, "1", rounded.Abs().StringFixed(displayFraction), 1)
		return strings.Replace(s, "$", f.Grapheme, 1)
	}
	return f.Format(cents.IntPart())
}
