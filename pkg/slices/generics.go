package slices

import (
	originSlices "slices"

	"golang.org/x/exp/constraints"
)

func GenericsFilterSliceEmptyValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	var emptyValue T
	for _, v := range list {
		if v == emptyValue {
			continue
		}
		result = append(result, v)
	}
	return result
}

func GenericsUniqueSliceValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	seen := make(map[T]struct{})
	for _, v := range list {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// GenericsDuplicateValues returns the values that occur more than once, in
// order of their second occurrence.
func GenericsDuplicateValues[T comparable](list []T) []T {
	var result []T
	seen := make(map[T]int)
	for _, v := range list {
		seen[v]++
		if seen[v] == 2 {
			result = append(result, v)
		}
	}
	return result
}

// GenericsStandardizeSlice drops empty values and duplicates and sorts the rest.
func GenericsStandardizeSlice[T constraints.Ordered](list []T) []T {
	if list == nil {
		return make([]T, 0)
	}
	result := GenericsFilterSliceEmptyValues(list)
	result = GenericsUniqueSliceValues(result)
	originSlices.Sort(result)
	return result
}
