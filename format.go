package lotbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an exact decimal in the given ISO currency
// code, using the currency's conventional symbol, separators and
// fraction digits. Unknown codes fall back to go-money's default
// formatting.
func FormatAmount(code string, v decimal.Decimal) string {
	// The Money constructor is the only way to get a never-nil currency.
	cur := money.New(0, code).Currency()
	shifted := v.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}
