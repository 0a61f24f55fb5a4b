package deck

import (
	"errors"
	"math/rand"
)

var ErrNotEnoughItems = errors.New("not enough items to pick from")

// Shuffle returns a uniformly shuffled copy of src. src is left untouched.
// It walks from the last index down to 1 and swaps each element with one
// drawn from [0, i] (Durstenfeld's variant of Fisher-Yates).
func Shuffle[T any](src []T, rng *rand.Rand) []T {
	out := make([]T, len(src))
	copy(out, src)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
