package response_models

type DayPlan struct {
	Day       int    `json:"day"`
	Morning   string `json:"morning"`
	Lunch     string `json:"lunch"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

const (
	ListSourceProvider = "provider"
	ListSourceFallback = "fallback"
)

type ItineraryResponse struct {
	City              City            `json:"city"`
	CityCorrected     bool            `json:"city_corrected"`
	Description       string          `json:"description"`
	Weather           WeatherSnapshot `json:"weather"`
	Restaurants       []Place         `json:"restaurants"`
	Attractions       []Place         `json:"attractions"`
	Days              []DayPlan       `json:"days"`
	LocalSpecialties  []string        `json:"local_specialties"`
	SpecialtiesSource string          `json:"specialties_source"`
	FamousLandmarks   []string        `json:"famous_landmarks"`
	Gallery           []string        `json:"gallery"`
	GallerySource     string          `json:"gallery_source"`
}
