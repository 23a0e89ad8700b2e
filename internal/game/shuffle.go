package game

import "math/rand/v2"

// Shuffle returns a new slice with the elements of items in a uniformly
// random permutation (Fisher-Yates). The input is left unmodified.
func Shuffle[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
