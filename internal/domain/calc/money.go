package calc

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

// ToDecimal converts a numeric or textual value into an exact decimal.
// Monetary values must never pass through binary floating point on their way
// into the engine; float64 is accepted only for caller convenience and is
// converted via its shortest decimal representation.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: cannot parse %q as decimal", valueobject.CodeInvalidDecimal, x)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: cannot parse %q as decimal", valueobject.CodeInvalidDecimal, x.String())
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		return decimal.NewFromFloat(x), nil
	default:
		return decimal.Zero, fmt.Errorf("%s: unsupported type %T", valueobject.CodeInvalidDecimal, v)
	}
}

// RoundMoney applies the configured rounding policy to a monetary value.
// Every monetary value leaving the engine goes through this function.
func RoundMoney(d decimal.Decimal, cfg valueobject.CalculationConfig) decimal.Decimal {
	cfg = cfg.Normalize()
	switch cfg.Mode {
	case valueobject.RoundUp:
		return d.RoundCeil(cfg.Precision)
	case valueobject.RoundDown:
		return d.RoundFloor(cfg.Precision)
	default:
		// Half away from zero; equivalent to half-up for non-negative money.
		return d.Round(cfg.Precision)
	}
}

// clampZero floors a decimal at zero.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// minDecimal returns the smaller of a and b.
func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
