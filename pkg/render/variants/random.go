package variants

import (
	"math"
	"math/rand/v2"
)

// Scatter seeds for the themes that place motifs pseudo-randomly.
const (
	SeedSinterklaas uint64 = 55
	SeedValentine   uint64 = 14
	SeedCarnival    uint64 = 42
)

// newRand returns a generator private to one variant call.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// between returns an integer in [lo, hi]. A collapsed range (tiny canvas)
// yields lo.
func between(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// uniform returns a float in [lo, hi) rounded to two decimals.
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return math.Round((lo+(hi-lo)*r.Float64())*100) / 100
}
