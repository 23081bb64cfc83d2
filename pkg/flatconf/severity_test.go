package flatconf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "off", SeverityOff.String())
	assert.Equal(t, "warn", SeverityWarn.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"off", SeverityOff, true},
		{"warn", SeverityWarn, true},
		{"warning", SeverityWarn, true},
		{"error", SeverityError, true},
		{"ERROR", SeverityError, true},
		{"fatal", SeverityOff, false},
		{"", SeverityOff, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityFromValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Severity
		ok    bool
	}{
		{"string off", "off", SeverityOff, true},
		{"string warn", "warn", SeverityWarn, true},
		{"int 0", 0, SeverityOff, true},
		{"int 1", 1, SeverityWarn, true},
		{"int 2", 2, SeverityError, true},
		{"int out of range", 3, SeverityOff, false},
		{"negative", -1, SeverityOff, false},
		{"float whole", float64(2), SeverityError, true},
		{"float fractional", 1.5, SeverityOff, false},
		{"bool false", false, SeverityOff, true},
		{"bool true", true, SeverityOff, false},
		{"nil", nil, SeverityOff, false},
		{"slice", []any{1}, SeverityOff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SeverityFromValue(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityMarshalJSON(t *testing.T) {
	b, err := json.Marshal(RuleLevel{Severity: SeverityWarn})
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"warn"}`, string(b))
}
