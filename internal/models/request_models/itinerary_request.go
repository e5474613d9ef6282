package request_models

type ItineraryRequest struct {
	City      string   `json:"city"`
	Days      int      `json:"days"`
	Budget    string   `json:"budget"`
	Interests []string `json:"interests"`
	StartDate string   `json:"start_date"`
}
