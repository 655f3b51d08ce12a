package kitchen

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

type dishFile struct {
	Dishes []dishEntry `yaml:"dishes"`
}

// dishEntry keeps the cuisine optional so a missing key is told apart from
// the zero cuisine.
type dishEntry struct {
	Name        string       `yaml:"name"`
	Ingredients []string     `yaml:"ingredients"`
	PrepTime    int          `yaml:"prepTime"`
	Price       float64      `yaml:"price"`
	Cuisine     *CuisineType `yaml:"cuisine"`
}

// LoadDishes reads a YAML (or JSON) document of the form
//
//	dishes:
//	  - name: Tacos
//	    ingredients: [Tortilla, Beef, Lettuce]
//	    prepTime: 15
//	    price: 9.99
//	    cuisine: mexican
func LoadDishes(r io.Reader) ([]Dish, error) {
	var f dishFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode dishes: %w", err)
	}
	dishes := make([]Dish, 0, len(f.Dishes))
	for i, d := range f.Dishes {
		if d.Name == "" {
			return nil, fmt.Errorf("dish #%d: missing name", i+1)
		}
		if d.Cuisine == nil {
			return nil, fmt.Errorf("dish %q: missing cuisine: %w", d.Name, ErrUnknownCuisine)
		}
		if d.PrepTime < 0 {
			return nil, fmt.Errorf("dish %q: negative prep time %d", d.Name, d.PrepTime)
		}
		if math.IsNaN(d.Price) || math.IsInf(d.Price, 0) {
			return nil, fmt.Errorf("dish %q: invalid price %v", d.Name, d.Price)
		}
		dishes = append(dishes, NewDish(d.Name, d.Ingredients, d.PrepTime, d.Price, *d.Cuisine))
	}
	return dishes, nil
}
