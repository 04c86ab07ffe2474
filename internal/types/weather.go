package types

// WeatherReport is a snapshot of the current conditions at a location.
// Temperatures are in degrees Celsius.
type WeatherReport struct {
	Temperature float64
	FeelsLike   float64
	Conditions  []string
	Pressure    Pressure
	Humidity    int // percent
}
