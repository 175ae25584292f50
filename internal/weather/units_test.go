package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDisplayTemperature(t *testing.T) {
	tests := []struct {
		tempC int
		unit  Unit
		want  string
	}{
		{0, UnitFahrenheit, "32°F"},
		{100, UnitCelsius, "100°C"},
		{100, UnitFahrenheit, "212°F"},
		{-40, UnitFahrenheit, "-40°F"},
		{-40, UnitCelsius, "-40°C"},
		{21, UnitFahrenheit, "70°F"},
		{-18, UnitFahrenheit, "0°F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDisplayTemperature(tt.tempC, tt.unit))
	}
}

func TestCelsiusToFahrenheitRoundsHalfUp(t *testing.T) {
	// 37°C is exactly 98.6°F; -17°C is 1.4°F.
	assert.Equal(t, 99, CelsiusToFahrenheit(37))
	assert.Equal(t, 1, CelsiusToFahrenheit(-17))
	assert.Equal(t, -2, roundHalfUp(-2.5))
	assert.Equal(t, 3, roundHalfUp(2.5))
}

func TestParseUnitAndToggle(t *testing.T) {
	u, err := ParseUnit("F")
	require.NoError(t, err)
	assert.Equal(t, UnitFahrenheit, u)

	u, err = ParseUnit(" Celsius ")
	require.NoError(t, err)
	assert.Equal(t, UnitCelsius, u)

	_, err = ParseUnit("kelvin")
	assert.Error(t, err)

	assert.Equal(t, UnitFahrenheit, UnitCelsius.Toggle())
	assert.Equal(t, UnitCelsius, UnitFahrenheit.Toggle())
}
