package common

// SeededRNG is a Mulberry32 pseudo-random generator. Effects and the shuffle
// control draw from it so a fixed seed reproduces a page session exactly.
type SeededRNG struct {
	state uint32
	seed  uint32
}

// NewSeededRNG creates a generator starting at seed.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed, seed: seed}
}

// Seed returns the seed the generator was last reset to.
func (r *SeededRNG) Seed() uint32 {
	return r.seed
}

// Reseed restarts the sequence from seed.
func (r *SeededRNG) Reseed(seed uint32) {
	r.state = seed
	r.seed = seed
}

// Float returns a value in [0, 1).
func (r *SeededRNG) Float() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a value in [min, max).
func (r *SeededRNG) Range(min, max float64) float64 {
	return r.Float()*(max-min) + min
}

// Intn returns an integer in [0, n). n must be positive.
func (r *SeededRNG) Intn(n int) int {
	i := int(r.Float() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle permutes n elements with Fisher-Yates, calling swap for each exchange.
func (r *SeededRNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
