package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Temperature is a body temperature in tenths of a degree Celsius.
// 36.5°C is Temperature(365).
type Temperature int

const (
	// MinTemperature is the lowest accepted reading (30.0°C).
	MinTemperature Temperature = 300

	// MaxTemperature is the highest accepted reading (42.0°C).
	MaxTemperature Temperature = 420

	// NormalCeiling is the highest temperature still classified Normal (37.5°C).
	// It is the same for every subject.
	NormalCeiling Temperature = 375
)

// maxMagnitude bounds parsed values so that tenths always fit in a Temperature.
const maxMagnitude = 1000.0

// Celsius converts degrees Celsius to a Temperature, rounding half away from
// zero to one decimal place.
func Celsius(c float64) Temperature {
	return Temperature(math.Round(c * 10))
}

// ParseTemperature parses decimal text such as "37.8", " 38 " or "38.2°C".
// It checks that the value is numeric and of sane magnitude, not that it is
// within the domain.
func ParseTemperature(s string) (Temperature, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "℃")
	s = strings.TrimSuffix(s, "°C")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty temperature")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	if math.Abs(f) > maxMagnitude {
		return 0, fmt.Errorf("out of range")
	}
	return Celsius(f), nil
}

// InDomain reports whether t lies within [MinTemperature, MaxTemperature].
func (t Temperature) InDomain() bool {
	return t >= MinTemperature && t <= MaxTemperature
}

// String formats the temperature with exactly one decimal digit.
func (t Temperature) String() string {
	v := int(t)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

// Signed formats a temperature difference with an explicit sign ("+0.4",
// "-0.3"). Zero is written without a sign.
func (t Temperature) Signed() string {
	if t > 0 {
		return "+" + t.String()
	}
	return t.String()
}

// MarshalJSON writes the temperature as a JSON number with one decimal digit.
func (t Temperature) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (t *Temperature) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTemperature(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("temperature %s: %w", data, err)
	}
	*t = parsed
	return nil
}
