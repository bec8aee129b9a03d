package arkanoid

// Rand is the random source consumed by Update. *rand.Rand from math/rand/v2
// satisfies it, as does SimpleRNG.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so a run can be replayed and its state hashed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// IntN returns a random int in [0, n). Non-positive n yields 0.
// The low bits of an LCG cycle quickly, so only the high half is used.
func (r *SimpleRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	// Top 53 bits fill the mantissa exactly, so 1.0 is never produced.
	return float64(r.Next()>>11) / (1 << 53)
}

// State returns the internal generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
