package weather

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a temperature display unit.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// ParseUnit accepts "celsius"/"c" and "fahrenheit"/"f" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return UnitCelsius, nil
	case "fahrenheit", "f":
		return UnitFahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == UnitFahrenheit {
		return UnitCelsius
	}
	return UnitFahrenheit
}

// Symbol returns the degree symbol and unit letter.
func (u Unit) Symbol() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// CelsiusToFahrenheit converts and rounds to the nearest whole degree.
func CelsiusToFahrenheit(tempC int) int {
	return roundHalfUp(float64(tempC)*9/5 + 32)
}

// ToDisplayTemperature renders a Celsius temperature in the given unit.
func ToDisplayTemperature(tempC int, unit Unit) string {
	if unit == UnitFahrenheit {
		return fmt.Sprintf("%d%s", CelsiusToFahrenheit(tempC), unit.Symbol())
	}
	return fmt.Sprintf("%d%s", tempC, UnitCelsius.Symbol())
}

// roundHalfUp rounds halves toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
