package record

import "fmt"

// Severity is the color band a temperature falls into.
type Severity int

const (
	Normal Severity = iota
	Caution
	Danger
)

func (s Severity) String() string {
	switch s {
	case Normal:
		return "normal"
	case Caution:
		return "caution"
	case Danger:
		return "danger"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classify maps value onto a Severity given the subject's danger limit.
// The normal ceiling is inclusive on the Normal side and the danger limit is
// inclusive on the Danger side.
func Classify(value, dangerLimit Temperature) Severity {
	switch {
	case value <= NormalCeiling:
		return Normal
	case value < dangerLimit:
		return Caution
	default:
		return Danger
	}
}
