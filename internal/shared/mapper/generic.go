// Package mapper holds generic slice conversions shared by the DTO and
// persistence layers.
package mapper

import "fmt"

// MapSlice applies fn to each element. A nil input stays nil.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapRows converts database rows by address, stopping at the first failure.
// The error names the offending row index.
func MapRows[T any, R any](rows []T, fn func(*T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(rows))
	for i := range rows {
		r, err := fn(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
