package valueobject

import (
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// InterestType – immutable value object
// ---------------------------------------------------------------------------

// InterestType selects the interest model governing a loan's payments.
// The set is closed: the calculation engine switches exhaustively over it.
type InterestType struct {
	value string
}

const (
	interestTypeSimple       = "SIMPLE"
	interestTypeAmortized    = "AMORTIZED"
	interestTypeInterestOnly = "INTEREST_ONLY"
)

var (
	InterestTypeSimple       = InterestType{value: interestTypeSimple}
	InterestTypeAmortized    = InterestType{value: interestTypeAmortized}
	InterestTypeInterestOnly = InterestType{value: interestTypeInterestOnly}
)

var validInterestTypes = map[string]InterestType{
	interestTypeSimple:       InterestTypeSimple,
	interestTypeAmortized:    InterestTypeAmortized,
	interestTypeInterestOnly: InterestTypeInterestOnly,
}

// NewInterestType creates an InterestType from a raw string.
func NewInterestType(s string) (InterestType, error) {
	v, ok := validInterestTypes[s]
	if !ok {
		return InterestType{}, fmt.Errorf("invalid interest type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the interest type.
func (t InterestType) String() string { return t.value }

// IsZero returns true if the interest type has not been initialised.
func (t InterestType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t InterestType) Equal(other InterestType) bool {
	return t.value == other.value
}

// MarshalJSON serializes the interest type as its string value.
func (t InterestType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// UnmarshalJSON restores an interest type from its string value.
func (t *InterestType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := NewInterestType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
