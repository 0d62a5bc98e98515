package travelbuddy

import (
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// usdRates is the static rate table: USD value of one unit of each currency.
// Rates are a snapshot, conversions work offline.
var usdRates = map[string]decimal.Decimal{
	"USD": decimal.RequireFromString("1"),
	"EUR": decimal.RequireFromString("1.09"),
	"GBP": decimal.RequireFromString("1.27"),
	"INR": decimal.RequireFromString("0.012"),
	"JPY": decimal.RequireFromString("0.0067"),
	"AUD": decimal.RequireFromString("0.66"),
	"CAD": decimal.RequireFromString("0.74"),
	"CHF": decimal.RequireFromString("1.13"),
	"CNY": decimal.RequireFromString("0.14"),
	"SGD": decimal.RequireFromString("0.74"),
	"AED": decimal.RequireFromString("0.27"),
	"THB": decimal.RequireFromString("0.028"),
}

// rate returns the USD unit value of a currency. Unknown codes take rate 1:
// an unknown currency converts as a pass-through rather than failing, so the
// converter stays total.
func rate(code string) decimal.Decimal {
	if r, ok := usdRates[code]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// Convert converts an amount between two currencies using the static rate
// table. Converting a currency to itself returns the amount exactly.
func Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	return amount.Mul(rate(from)).Div(rate(to))
}

// Currencies returns the supported currency codes in alphabetical order.
func Currencies() []string {
	codes := make([]string, 0, len(usdRates))
	for code := range usdRates {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// CurrencySymbol returns the symbol of a currency code, or the code itself
// when it is unknown.
func CurrencySymbol(code string) string {
	if c := money.GetCurrency(code); c != nil {
		return c.Grapheme
	}
	return code
}

// FormatAmount renders an amount in the given currency with its symbol and
// fraction digits.
func FormatAmount(amount decimal.Decimal, code string) string {
	// the Money constructor guarantees a non-nil currency.
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
