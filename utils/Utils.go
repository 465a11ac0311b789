package utils

import "github.com/google/uuid"

// Unique returns the elements of slice in first-seen order without repeats.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func NewRunID() string {
	return uuid.New().String()
}
