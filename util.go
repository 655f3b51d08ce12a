package kitchen

import (
	"github.com/iancoleman/strcase"
)

// ContainsCuisineName reports whether value names one of names, ignoring
// case and separators.
func ContainsCuisineName(names []string, value string) bool {
	for _, v := range names {
		if strcase.ToScreamingSnake(v) == strcase.ToScreamingSnake(value) {
			return true
		}
	}
	return false
}

func Ternary[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}
