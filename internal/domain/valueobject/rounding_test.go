package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

func TestNewRoundingMode(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.RoundingMode
		wantErr  bool
	}{
		{"ROUND_NEAREST", valueobject.RoundNearest, false},
		{"ROUND_UP", valueobject.RoundUp, false},
		{"ROUND_DOWN", valueobject.RoundDown, false},
		{"BANKERS", valueobject.RoundingMode{}, true},
		{"", valueobject.RoundingMode{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.NewRoundingMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(result))
			}
		})
	}
}

func TestCalculationConfig_Normalize(t *testing.T) {
	cfg := valueobject.CalculationConfig{}.Normalize()
	assert.Equal(t, int32(2), cfg.Precision)
	assert.True(t, cfg.Mode.Equal(valueobject.RoundNearest))

	custom := valueobject.CalculationConfig{Precision: 4, Mode: valueobject.RoundDown}.Normalize()
	assert.Equal(t, int32(4), custom.Precision)
	assert.True(t, custom.Mode.Equal(valueobject.RoundDown))
}

func TestValidationErrors_HasCode(t *testing.T) {
	errs := valueobject.ValidationErrors{
		{Field: "principal", Code: valueobject.CodePrincipalNotPositive, Message: "principal must be positive"},
		{Field: "term_months", Code: valueobject.CodeTermOutOfRange, Message: "term must be between 1 and 600"},
	}

	assert.True(t, errs.HasCode(valueobject.CodePrincipalNotPositive))
	assert.False(t, errs.HasCode(valueobject.CodeRateOutOfRange))
	assert.Contains(t, errs.Error(), "principal")
	assert.Contains(t, errs.Error(), valueobject.CodeTermOutOfRange)
}
