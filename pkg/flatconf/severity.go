package flatconf

import (
	"encoding/json"
	"strings"
)

// Severity is the enforcement level of a rule.
type Severity int

// Enforcement levels, in the conventional numeric order (0/1/2).
const (
	// SeverityOff disables the rule entirely.
	SeverityOff Severity = iota
	// SeverityWarn reports violations without failing the run.
	SeverityWarn
	// SeverityError reports violations and fails the run.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityOff and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "off":
		return SeverityOff, true
	case "warn", "warning":
		return SeverityWarn, true
	case "error":
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// SeverityFromValue converts any of the accepted config forms to a
// Severity: the strings "off"/"warn"/"error", the numbers 0/1/2, or a
// boolean (false means off). Returns false for anything else.
func SeverityFromValue(v any) (Severity, bool) {
	switch t := v.(type) {
	case string:
		return ParseSeverity(t)
	case bool:
		if !t {
			return SeverityOff, true
		}
		return SeverityOff, false
	case int:
		return severityFromInt(t)
	case int64:
		return severityFromInt(int(t))
	case uint64:
		return severityFromInt(int(t))
	case float64:
		if t == float64(int(t)) {
			return severityFromInt(int(t))
		}
		return SeverityOff, false
	default:
		return SeverityOff, false
	}
}

func severityFromInt(n int) (Severity, bool) {
	if n < 0 || n > 2 {
		return SeverityOff, false
	}
	return Severity(n), true
}
