// Package rand implements the 48-bit linear congruential generator of java.util.Random. Structures
// generated from the same seed consume the exact same stream of values, no matter the platform.
package rand

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (1 << 48) - 1
)

// Random is a pseudo-random number generator. A Random is not safe for concurrent use: it is passed by
// reference through a single generation call chain.
type Random struct {
	seed int64
}

// NewRandom returns a new Random seeded with the seed passed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the Random to the state of a Random newly created with the seed passed.
func (r *Random) SetSeed(seed int64) {
	r.seed = (seed ^ multiplier) & mask
}

// next produces the next value of the stream with the amount of random bits passed.
func (r *Random) next(bits uint) int32 {
	r.seed = (r.seed*multiplier + addend) & mask
	return int32(r.seed >> (48 - bits))
}

// Int31n returns a pseudo-random integer in [0, n). Int31n panics if n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rand: invalid argument to Int31n")
	}
	if n&-n == n {
		return int32((int64(n) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % n
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// Range returns a pseudo-random integer in [min, max].
func (r *Random) Range(min, max int32) int32 {
	return min + r.Int31n(max-min+1)
}

// Float32 returns a pseudo-random float32 in [0, 1).
func (r *Random) Float32() float32 {
	return float32(r.next(24)) / (1 << 24)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *Random) Float64() float64 {
	return float64(int64(r.next(26))<<27+int64(r.next(27))) * (1.0 / (1 << 53))
}
