package deck

import (
	"fmt"
	"math/rand"
)

// PickRandom draws k distinct elements from src without replacement.
// The order of the result is the order of the draws.
func PickRandom[T any](src []T, k int, rng *rand.Rand) ([]T, error) {
	if k < 0 || k > len(src) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughItems, k, len(src))
	}

	work := make([]T, len(src))
	copy(work, src)

	picks := make([]T, 0, k)
	for i := 0; i < k; i++ {
		idx := rng.Intn(len(work))
		picks = append(picks, work[idx])
		work = append(work[:idx], work[idx+1:]...)
	}
	return picks, nil
}
