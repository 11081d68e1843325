package valueobject_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/loanengine/internal/domain/valueobject"
)

func TestInterestType_String(t *testing.T) {
	assert.Equal(t, "SIMPLE", valueobject.InterestTypeSimple.String())
	assert.Equal(t, "AMORTIZED", valueobject.InterestTypeAmortized.String())
	assert.Equal(t, "INTEREST_ONLY", valueobject.InterestTypeInterestOnly.String())
}

func TestNewInterestType(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.InterestType
		wantErr  bool
	}{
		{"SIMPLE", valueobject.InterestTypeSimple, false},
		{"AMORTIZED", valueobject.InterestTypeAmortized, false},
		{"INTEREST_ONLY", valueobject.InterestTypeInterestOnly, false},
		{"COMPOUND", valueobject.InterestType{}, true},
		{"simple", valueobject.InterestType{}, true},
		{"", valueobject.InterestType{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.NewInterestType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(result))
			}
		})
	}
}

func TestInterestType_IsZero(t *testing.T) {
	assert.True(t, valueobject.InterestType{}.IsZero())
	assert.False(t, valueobject.InterestTypeSimple.IsZero())
}

func TestInterestType_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(valueobject.InterestTypeAmortized)
	require.NoError(t, err)
	assert.Equal(t, `"AMORTIZED"`, string(data))

	var parsed valueobject.InterestType
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(valueobject.InterestTypeAmortized))

	var bad valueobject.InterestType
	assert.Error(t, json.Unmarshal([]byte(`"COMPOUND"`), &bad))
}
