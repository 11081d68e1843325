package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RoundingMode – immutable value object
// ---------------------------------------------------------------------------

// RoundingMode selects how monetary values are rounded before being returned.
type RoundingMode struct {
	value string
}

const (
	roundNearest = "ROUND_NEAREST"
	roundUp      = "ROUND_UP"
	roundDown    = "ROUND_DOWN"
)

var (
	// RoundNearest rounds half-up to the configured precision. The default.
	RoundNearest = RoundingMode{value: roundNearest}
	// RoundUp rounds toward positive infinity (ceiling).
	RoundUp = RoundingMode{value: roundUp}
	// RoundDown rounds toward negative infinity (floor).
	RoundDown = RoundingMode{value: roundDown}
)

var validRoundingModes = map[string]RoundingMode{
	roundNearest: RoundNearest,
	roundUp:      RoundUp,
	roundDown:    RoundDown,
}

// NewRoundingMode creates a RoundingMode from a raw string.
func NewRoundingMode(s string) (RoundingMode, error) {
	v, ok := validRoundingModes[s]
	if !ok {
		return RoundingMode{}, fmt.Errorf("invalid rounding mode: %q", s)
	}
	return v, nil
}

// String returns the string representation of the rounding mode.
func (m RoundingMode) String() string { return m.value }

// IsZero returns true if the mode has not been initialised.
func (m RoundingMode) IsZero() bool { return m.value == "" }

// Equal returns true when both modes carry the same value.
func (m RoundingMode) Equal(other RoundingMode) bool {
	return m.value == other.value
}

// ---------------------------------------------------------------------------
// CalculationConfig
// ---------------------------------------------------------------------------

// CalculationConfig carries the rounding policy for a single calculation.
// It is passed explicitly per call; the engine holds no process-wide
// rounding state.
type CalculationConfig struct {
	Precision int32
	Mode      RoundingMode
}

// DefaultCalculationConfig returns the standard money policy: two decimal
// places, half-up.
func DefaultCalculationConfig() CalculationConfig {
	return CalculationConfig{Precision: 2, Mode: RoundNearest}
}

// Normalize fills in zero-valued fields with their defaults.
func (c CalculationConfig) Normalize() CalculationConfig {
	if c.Precision <= 0 {
		c.Precision = 2
	}
	if c.Mode.IsZero() {
		c.Mode = RoundNearest
	}
	return c
}
