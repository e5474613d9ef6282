package services

import (
	"fmt"

	"trippy/internal/models/response_models"
)

const (
	minDays     = 1
	maxDays     = 30
	defaultDays = 3
)

var dayThemes = []string{
	"classic highlights",
	"art and culture",
	"local flavors",
	"outdoor escapes",
	"hidden corners",
}

// ClampDays keeps the requested day count inside [1, 30]; zero means
// the caller left it out and gets the default.
func ClampDays(days int) int {
	if days == 0 {
		return defaultDays
	}
	if days < minDays {
		return minDays
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

// ComposeDays is pure: the same inputs always yield the same plans.
// Each day cycles through the theme list and walks the already-ranked
// attraction and restaurant lists by index.
func ComposeDays(days int, city string, attractions, restaurants []response_models.Place, interests []string) []response_models.DayPlan {
	plans := make([]response_models.DayPlan, 0, days)
	for d := 1; d <= days; d++ {
		theme := dayThemes[(d-1)%len(dayThemes)]

		var morning, afternoon string
		if len(attractions) > 0 {
			anchor := attractions[anchorIndex(d, len(attractions))]
			morning = fmt.Sprintf("Visit %s to kick off a day of %s", anchor.Name, theme)
			afternoon = fmt.Sprintf("Wander the nearby highlights around %s", anchor.Name)
		} else {
			morning = fmt.Sprintf("Explore the centre of %s and its main sights, with a focus on %s", city, theme)
			afternoon = "Visit a museum or relax at a park"
		}

		lunch := "Try a popular local dish for lunch"
		if len(restaurants) > 0 {
			r := restaurants[(d-1)%len(restaurants)]
			if r.Specialty != "" {
				lunch = fmt.Sprintf("Lunch at %s - try their %s", r.Name, r.Specialty)
			} else {
				lunch = fmt.Sprintf("Lunch at %s", r.Name)
			}
		}

		var evening string
		switch {
		case hasInterest(interests, "Food"):
			evening = "Sample the local food scene at an evening market or bistro"
		case hasInterest(interests, "Adventure"):
			evening = "Catch the sunset from a viewpoint, then head out for the nightlife"
		default:
			evening = "Unwind with a relaxed evening stroll"
		}

		plans = append(plans, response_models.DayPlan{
			Day:       d,
			Morning:   morning,
			Lunch:     lunch,
			Afternoon: afternoon,
			Evening:   evening,
		})
	}
	return plans
}

func anchorIndex(day, total int) int {
	idx := (day - 1) * 2
	if idx >= total {
		idx = total - 1
	}
	return idx
}

func hasInterest(interests []string, want string) bool {
	for _, i := range interests {
		if i == want {
			return true
		}
	}
	return false
}
