package response_models

// City is the canonical geocoded identity of a destination. Latitude
// and longitude stay nil when geocoding fell back to the raw input.
type City struct {
	Name        string   `json:"name"`
	State       string   `json:"state,omitempty"`
	Country     string   `json:"country,omitempty"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	DisplayName string   `json:"display_name"`
}

type CitySearchResponse struct {
	Query  string `json:"query"`
	Cities []City `json:"cities"`
}
