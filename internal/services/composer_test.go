package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trippy/internal/models/response_models"
)

func TestClampDays(t *testing.T) {
	assert.Equal(t, 3, ClampDays(0))
	assert.Equal(t, 1, ClampDays(-4))
	assert.Equal(t, 1, ClampDays(1))
	assert.Equal(t, 30, ClampDays(30))
	assert.Equal(t, 30, ClampDays(365))
}

func TestComposeDaysContiguousIndices(t *testing.T) {
	for _, n := range []int{1, 5, 30} {
		plans := ComposeDays(n, "Goa", nil, nil, nil)
		require.Len(t, plans, n)
		for i, p := range plans {
			assert.Equal(t, i+1, p.Day)
			assert.NotEmpty(t, p.Morning)
			assert.NotEmpty(t, p.Lunch)
			assert.NotEmpty(t, p.Afternoon)
			assert.NotEmpty(t, p.Evening)
		}
	}
}

func TestComposeDaysIsDeterministic(t *testing.T) {
	attractions := []response_models.Place{{Name: "Fort Aguada"}, {Name: "Baga Beach"}}
	restaurants := []response_models.Place{{Name: "Spice Garden", Specialty: "Vindaloo"}}

	first := ComposeDays(4, "Goa", attractions, restaurants, []string{"Food"})
	second := ComposeDays(4, "Goa", attractions, restaurants, []string{"Food"})

	assert.Equal(t, first, second)
}

func TestComposeDaysAnchorsWalkTheAttractionList(t *testing.T) {
	attractions := make([]response_models.Place, 5)
	for i := range attractions {
		attractions[i] = response_models.Place{Name: fmt.Sprintf("Sight %d", i)}
	}

	plans := ComposeDays(4, "Goa", attractions, nil, nil)

	assert.Contains(t, plans[0].Morning, "Sight 0")
	assert.Contains(t, plans[1].Morning, "Sight 2")
	assert.Contains(t, plans[2].Morning, "Sight 4")
	// Past the end of the list the last attraction anchors the day.
	assert.Contains(t, plans[3].Morning, "Sight 4")
}

func TestComposeDaysLunchRoundRobin(t *testing.T) {
	restaurants := []response_models.Place{{Name: "First"}, {Name: "Second"}}

	plans := ComposeDays(3, "Goa", nil, restaurants, nil)

	assert.Contains(t, plans[0].Lunch, "First")
	assert.Contains(t, plans[1].Lunch, "Second")
	assert.Contains(t, plans[2].Lunch, "First")
}

func TestComposeDaysEveningBranchesOnInterests(t *testing.T) {
	food := ComposeDays(1, "Goa", nil, nil, []string{"Adventure", "Food"})
	adventure := ComposeDays(1, "Goa", nil, nil, []string{"Adventure"})
	generic := ComposeDays(1, "Goa", nil, nil, []string{"History"})

	// Food wins over Adventure when both are present.
	assert.Contains(t, food[0].Evening, "food")
	assert.Contains(t, adventure[0].Evening, "sunset")
	assert.Contains(t, generic[0].Evening, "stroll")
}

func TestComposeDaysThemesCycle(t *testing.T) {
	plans := ComposeDays(6, "Goa", []response_models.Place{{Name: "Fort"}}, nil, nil)

	assert.Contains(t, plans[0].Morning, dayThemes[0])
	assert.Contains(t, plans[4].Morning, dayThemes[4])
	assert.Contains(t, plans[5].Morning, dayThemes[0])
}
