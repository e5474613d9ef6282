package response_models

// Place is one attraction or restaurant. DistanceM stays nil when the
// provider reported no distance, so a place right at the query point
// (0 m) is still distinguishable. PriceTier, Rating and Specialty are
// not provider data: the places API carries none of them, so
// restaurants get locally fabricated values and Estimated is set so
// clients can tell.
type Place struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Address   string  `json:"address,omitempty"`
	DistanceM *int    `json:"distance_m,omitempty"`
	PlaceID   string  `json:"place_id,omitempty"`
	PriceTier string  `json:"price_tier,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	Specialty string  `json:"specialty,omitempty"`
	Image     string  `json:"image,omitempty"`
	Estimated bool    `json:"estimated,omitempty"`
}

// Specialty is one local dish suggestion.
type Specialty struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
