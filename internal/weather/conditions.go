package weather

// ConditionKind is a normalized high-level weather condition.
type ConditionKind string

const (
	ConditionUnknown ConditionKind = "unknown"
	ConditionClear   ConditionKind = "clear"
	ConditionCloudy  ConditionKind = "cloudy"
	ConditionFog     ConditionKind = "fog"
	ConditionDrizzle ConditionKind = "drizzle"
	ConditionRain    ConditionKind = "rain"
	ConditionSnow    ConditionKind = "snow"
	ConditionStorm   ConditionKind = "storm"
)

// Condition describes a WMO weather code.
type Condition struct {
	Code        int           `json:"code"`
	Kind        ConditionKind `json:"kind"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
}

// Known reports whether the code was found in the table.
func (c Condition) Known() bool {
	return c.Kind != ConditionUnknown
}

var conditions = map[int]Condition{
	0:  {Kind: ConditionClear, Description: "Clear sky", Icon: "☀️"},
	1:  {Kind: ConditionClear, Description: "Mainly clear", Icon: "🌤️"},
	2:  {Kind: ConditionCloudy, Description: "Partly cloudy", Icon: "⛅"},
	3:  {Kind: ConditionCloudy, Description: "Overcast", Icon: "☁️"},
	45: {Kind: ConditionFog, Description: "Foggy", Icon: "🌫️"},
	48: {Kind: ConditionFog, Description: "Depositing rime fog", Icon: "🌫️"},
	51: {Kind: ConditionDrizzle, Description: "Light drizzle", Icon: "🌦️"},
	53: {Kind: ConditionDrizzle, Description: "Moderate drizzle", Icon: "🌦️"},
	55: {Kind: ConditionDrizzle, Description: "Dense drizzle", Icon: "🌦️"},
	61: {Kind: ConditionRain, Description: "Slight rain", Icon: "🌧️"},
	63: {Kind: ConditionRain, Description: "Moderate rain", Icon: "🌧️"},
	65: {Kind: ConditionRain, Description: "Heavy rain", Icon: "🌧️"},
	71: {Kind: ConditionSnow, Description: "Slight snow", Icon: "❄️"},
	73: {Kind: ConditionSnow, Description: "Moderate snow", Icon: "❄️"},
	75: {Kind: ConditionSnow, Description: "Heavy snow", Icon: "❄️"},
	77: {Kind: ConditionSnow, Description: "Snow grains", Icon: "❄️"},
	80: {Kind: ConditionRain, Description: "Slight rain showers", Icon: "🌦️"},
	81: {Kind: ConditionRain, Description: "Moderate rain showers", Icon: "🌧️"},
	82: {Kind: ConditionRain, Description: "Violent rain showers", Icon: "🌧️"},
	85: {Kind: ConditionSnow, Description: "Slight snow showers", Icon: "❄️"},
	86: {Kind: ConditionSnow, Description: "Heavy snow showers", Icon: "❄️"},
	95: {Kind: ConditionStorm, Description: "Thunderstorm", Icon: "⛈️"},
	96: {Kind: ConditionStorm, Description: "Thunderstorm with slight hail", Icon: "⛈️"},
	99: {Kind: ConditionStorm, Description: "Thunderstorm with heavy hail", Icon: "⛈️"},
}

// LookupCondition maps a WMO code to its description. Codes outside the
// table return a ConditionUnknown record rather than a neighbouring code.
func LookupCondition(code int) Condition {
	c, ok := conditions[code]
	if !ok {
		return Condition{Code: code, Kind: ConditionUnknown, Description: "Unknown", Icon: "🌤️"}
	}
	c.Code = code
	return c
}
