package response_models

const (
	WeatherSourceProvider  = "openweather"
	WeatherSourceGenerated = "generated"
)

// WeatherSnapshot always carries complete values. Source tells callers
// whether they came from the provider or were generated locally.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Conditions  string  `json:"conditions"`
	Humidity    int     `json:"humidity"`
	Source      string  `json:"source"`
}
