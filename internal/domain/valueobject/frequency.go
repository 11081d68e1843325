package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency determines how often payments fall due and therefore how
// many payment periods make up a year.
type PaymentFrequency struct {
	value string
}

const (
	frequencyMonthly  = "MONTHLY"
	frequencyBiWeekly = "BI_WEEKLY"
)

var (
	FrequencyMonthly  = PaymentFrequency{value: frequencyMonthly}
	FrequencyBiWeekly = PaymentFrequency{value: frequencyBiWeekly}
)

var validFrequencies = map[string]PaymentFrequency{
	frequencyMonthly:  FrequencyMonthly,
	frequencyBiWeekly: FrequencyBiWeekly,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validFrequencies[s]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("invalid payment frequency: %q", s)
	}
	return v, nil
}

// PeriodsPerYear returns the number of payment periods in one year, or 0 for
// an uninitialised frequency.
func (f PaymentFrequency) PeriodsPerYear() int {
	switch f.value {
	case frequencyMonthly:
		return 12
	case frequencyBiWeekly:
		return 26
	default:
		return 0
	}
}

// String returns the string representation of the frequency.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool {
	return f.value == other.value
}
