package utils

func FindIndex[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}

// FindLastIndex scans the whole slice and keeps the position of the last match.
func FindLastIndex[T any](slice []T, match func(T) bool) int {
	index := -1
	for i, v := range slice {
		if match(v) {
			index = i
		}
	}
	return index
}
