package board

var defaultPool = [...]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

// DefaultPool returns a fresh copy of the built-in symbols "1".."10".
func DefaultPool() []string {
	pool := defaultPool
	return pool[:]
}

// MaxDimension returns the largest even dimension the pool can fill,
// or 0 if it cannot fill even a 2x2 board.
func MaxDimension(pool []string) int {
	d := 0
	for n := 2; n*n/2 <= len(pool); n += 2 {
		d = n
	}
	return d
}
