package kitchen

import (
	"fmt"
	"math"
	"strings"
)

const (
	elaborateMinIngredients = 5
	elaborateMinPrepTime    = 60
)

func NewDish(name string, ingredients []string, prepTime int, price float64, cuisine CuisineType) Dish {
	return Dish{
		Name:        name,
		Ingredients: ingredients,
		PrepTime:    prepTime,
		Price:       price,
		Cuisine:     cuisine,
	}
}

// Equal compares every field, ingredients in order. NaN prices equal each
// other so such a dish can still be found and served.
func (d Dish) Equal(other Dish) bool {
	if d.Name != other.Name || d.PrepTime != other.PrepTime || d.Cuisine != other.Cuisine {
		return false
	}
	if d.Price != other.Price && !(math.IsNaN(d.Price) && math.IsNaN(other.Price)) {
		return false
	}
	if len(d.Ingredients) != len(other.Ingredients) {
		return false
	}
	for i, ingredient := range d.Ingredients {
		if ingredient != other.Ingredients[i] {
			return false
		}
	}
	return true
}

func (d Dish) IsElaborate() bool {
	return len(d.Ingredients) >= elaborateMinIngredients && d.PrepTime >= elaborateMinPrepTime
}

func (d Dish) CuisineName() string {
	return d.Cuisine.String()
}

func (d Dish) String() string {
	return fmt.Sprintf("%s(%s, %dmin, %.2f, [%s])", d.Name, d.Cuisine, d.PrepTime, d.Price, strings.Join(d.Ingredients, ", "))
}
