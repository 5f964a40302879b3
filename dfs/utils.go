// Package dfs provides common helper functions used by the traversal and its results.
package dfs

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse[T any](s []T) []T {
	out := make([]T, len(s)) // allocate new slice of same length
	for i := range s {       // iterate indices
		out[i] = s[len(s)-1-i] // assign from opposite end
	}

	return out
}

