package kitchen

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDishEqual(t *testing.T) {
	a := NewDish("Tacos", []string{"Tortilla", "Beef", "Lettuce"}, 15, 9.99, Mexican)
	b := NewDish("Tacos", []string{"Tortilla", "Beef", "Lettuce"}, 15, 9.99, Mexican)
	assert.True(t, a.Equal(b))

	c := b
	c.Ingredients = []string{"Beef", "Tortilla", "Lettuce"}
	assert.False(t, a.Equal(c))
	c = b
	c.Price = 10
	assert.False(t, a.Equal(c))
	c = b
	c.Cuisine = Other
	assert.False(t, a.Equal(c))
	c = b
	c.Ingredients = c.Ingredients[:2]
	assert.False(t, a.Equal(c))
}

func TestDishEqualNaNPrice(t *testing.T) {
	odd := NewDish("Mystery", nil, 10, math.NaN(), Other)
	assert.True(t, odd.Equal(odd))
	assert.False(t, odd.Equal(NewDish("Mystery", nil, 10, 1, Other)))

	k := NewKitchen(0)
	assert.True(t, k.NewOrder(odd))
	assert.False(t, k.NewOrder(NewDish("Mystery", nil, 10, math.NaN(), Other)))
	assert.True(t, k.ServeDish(odd))
	assert.True(t, k.IsEmpty())
	assert.Equal(t, 0, k.PrepTimeSum())
}

func TestDishIsElaborate(t *testing.T) {
	five := []string{"a", "b", "c", "d", "e"}
	assert.True(t, NewDish("x", five, 60, 1, Other).IsElaborate())
	assert.False(t, NewDish("x", five, 59, 1, Other).IsElaborate())
	assert.False(t, NewDish("x", five[:4], 90, 1, Other).IsElaborate())
}

func TestCuisineType(t *testing.T) {
	assert.Equal(t, "ITALIAN", Italian.String())
	assert.Equal(t, "OTHER", Other.String())
	assert.Equal(t, "CuisineType(12)", CuisineType(12).String())
	assert.False(t, CuisineType(-1).IsValid())
	assert.Len(t, CuisineTypes(), 7)
	assert.Equal(t, []string{"ITALIAN", "MEXICAN", "CHINESE", "INDIAN", "AMERICAN", "FRENCH", "OTHER"}, CuisineNames())

	c, ok := ParseCuisineType("FRENCH")
	assert.True(t, ok)
	assert.Equal(t, French, c)
	_, ok = ParseCuisineType("french")
	assert.False(t, ok)
	_, ok = ParseCuisineType("KOREAN")
	assert.False(t, ok)

	assert.Equal(t, "INDIAN", NormalizeCuisineName(" indian"))
	assert.True(t, ContainsCuisineName(CuisineNames(), "Chinese"))
	assert.False(t, ContainsCuisineName(CuisineNames(), "Korean"))
}

func TestDishJSON(t *testing.T) {
	d := NewDish("Pizza", []string{"Dough"}, 30, 14.99, Italian)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cuisine":"ITALIAN"`)

	var back Dish
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back))

	err = json.Unmarshal([]byte(`{"name":"Kimchi","cuisine":"KOREAN"}`), &back)
	assert.ErrorIs(t, err, ErrUnknownCuisine)

	_, err = json.Marshal(NewDish("Bad", nil, 1, 1, CuisineType(40)))
	assert.ErrorIs(t, err, ErrUnknownCuisine)
}
