package kitchen

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"
)

const (
	Italian CuisineType = iota
	Mexican
	Chinese
	Indian
	American
	French
	Other
)

// AllCuisines selects every dish regardless of cuisine.
const AllCuisines = "ALL"

var (
	ErrUnknownCuisine = errors.New("unknown cuisine type")

	cuisineNames = [...]string{
		Italian:  "ITALIAN",
		Mexican:  "MEXICAN",
		Chinese:  "CHINESE",
		Indian:   "INDIAN",
		American: "AMERICAN",
		French:   "FRENCH",
		Other:    "OTHER",
	}
)

// CuisineTypes lists every cuisine in report order.
func CuisineTypes() []CuisineType {
	return []CuisineType{Italian, Mexican, Chinese, Indian, American, French, Other}
}

func CuisineNames() []string {
	return append([]string(nil), cuisineNames[:]...)
}

func (c CuisineType) String() string {
	if c < Italian || int(c) >= len(cuisineNames) {
		return fmt.Sprintf("CuisineType(%d)", int(c))
	}
	return cuisineNames[c]
}

func (c CuisineType) IsValid() bool {
	return c >= Italian && int(c) < len(cuisineNames)
}

// ParseCuisineType is case sensitive, only the exact upper-case names match.
func ParseCuisineType(name string) (CuisineType, bool) {
	for i, n := range cuisineNames {
		if n == name {
			return CuisineType(i), true
		}
	}
	return Other, false
}

// NormalizeCuisineName turns loose input such as "italian" or " French" into
// the screaming snake form used by ParseCuisineType.
func NormalizeCuisineName(name string) string {
	return strcase.ToScreamingSnake(name)
}

func (c CuisineType) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCuisine, int(c))
	}
	return []byte(c.String()), nil
}

func (c *CuisineType) UnmarshalText(text []byte) error {
	parsed, ok := ParseCuisineType(NormalizeCuisineName(string(text)))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCuisine, string(text))
	}
	*c = parsed
	return nil
}
