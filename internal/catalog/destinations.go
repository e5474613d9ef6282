package catalog

import "sort"

// Destination is a curated entry for well-known cities. The pools back
// the /cities endpoint and the generic fallbacks used when providers
// return nothing.
type Destination struct {
	Name      string   `json:"name"`
	Landmarks []string `json:"landmarks"`
	Foods     []string `json:"foods"`
}

var destinations = map[string]Destination{
	"Paris": {
		Name:      "Paris",
		Landmarks: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Champs-Élysées", "Montmartre"},
		Foods:     []string{"Croissant", "Baguette", "Escargot", "Boeuf Bourguignon", "Macarons"},
	},
	"New York": {
		Name:      "New York",
		Landmarks: []string{"Statue of Liberty", "Times Square", "Central Park", "Empire State Building", "Broadway"},
		Foods:     []string{"New York Pizza", "Bagel with Lox", "Cheesecake", "Pastrami Sandwich", "Hot Dog"},
	},
	"Tokyo": {
		Name:      "Tokyo",
		Landmarks: []string{"Shibuya Crossing", "Tokyo Tower", "Senso-ji Temple", "Meiji Shrine", "Akihabara"},
		Foods:     []string{"Sushi", "Ramen", "Tempura", "Okonomiyaki", "Takoyaki"},
	},
	"Delhi": {
		Name:      "Delhi",
		Landmarks: []string{"Red Fort", "India Gate", "Qutub Minar", "Lotus Temple", "Chandni Chowk"},
		Foods:     []string{"Butter Chicken", "Chole Bhature", "Paratha", "Kebabs", "Jalebi"},
	},
	"Mumbai": {
		Name:      "Mumbai",
		Landmarks: []string{"Gateway of India", "Marine Drive", "Elephanta Caves", "Chhatrapati Shivaji Terminus", "Juhu Beach"},
		Foods:     []string{"Vada Pav", "Pav Bhaji", "Bombay Sandwich", "Seafood", "Misal Pav"},
	},
	"Bangalore": {
		Name:      "Bangalore",
		Landmarks: []string{"Bangalore Palace", "Lalbagh Botanical Garden", "Cubbon Park", "Vidhana Soudha", "ISKCON Temple"},
		Foods:     []string{"Masala Dosa", "Bisi Bele Bath", "Ragi Mudde", "Mysore Pak", "Filter Coffee"},
	},
}

// GenericFoods is the pool the specialties fallback samples from when
// the recipe provider is unreachable.
var GenericFoods = []string{
	"Street-side dumplings",
	"Grilled fish of the day",
	"Market flatbread",
	"Slow-cooked stew",
	"Seasonal fruit dessert",
	"House noodle soup",
	"Spiced rice platter",
	"Local cheese board",
	"Charcoal kebabs",
	"Harbour-fresh seafood",
	"Village-style pastry",
	"Herbal tea blend",
}

var GenericLandmarks = []string{
	"Old Town",
	"Central Market",
	"City Cathedral",
	"Riverside Promenade",
	"Main Square",
}

func Lookup(city string) (Destination, bool) {
	d, ok := destinations[city]
	return d, ok
}

func All() []Destination {
	out := make([]Destination, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
