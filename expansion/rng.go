package expansion

import "math/rand"

// defaultRNGSeed is used when no seed or source is configured, and for
// WithSeed(0), so that random visitation orders are reproducible by default.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// identityOrder writes 0..len(a)-1 into a.
func identityOrder(a []int) {
	for i := range a {
		a[i] = i
	}
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a.
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
