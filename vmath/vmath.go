package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 fixed point constants
const (
	Shift   = 32
	Scale   = 1 << Shift
	ScaleF  = float64(Scale)
	Mask    = Scale - 1
	Half    = 1 << (Shift - 1)
	One     = int64(Scale)
	LUTSize = 1024
	LUTMask = LUTSize - 1

	// EPS is the smallest geometrically meaningful quantity (2^-16).
	// Radii and scale factors clamp here instead of reaching zero.
	EPS = int64(1) << (Shift - 16)

	MaxValue = int64(math.MaxInt64)
	MinValue = int64(math.MinInt64)
)

// --- Conversion ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * ScaleF) }
func ToFloat(f int64) float64   { return float64(f) / ScaleF }

// --- Saturating arithmetic ---
// Every operation clamps at the int64 bounds instead of wrapping.
// Geometry code relies on this: no input, however degenerate, traps.

// Add returns a+b clamped to the representable range
func Add(a, b int64) int64 {
	sum := a + b
	if (sum > a) == (b > 0) {
		return sum
	}
	if b > 0 {
		return MaxValue
	}
	return MinValue
}

// Sub returns a-b clamped to the representable range
func Sub(a, b int64) int64 {
	diff := a - b
	if (diff < a) == (b > 0) {
		return diff
	}
	if b > 0 {
		return MinValue
	}
	return MaxValue
}

// Mul returns the Q32.32 product, saturating when the true result
// exceeds the representable range
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	hi, lo := bits.Mul64(ua, ub)
	if hi>>31 != 0 {
		// Shifted result would not fit in 63 bits
		if negative {
			return MinValue
		}
		return MaxValue
	}
	result := int64((hi << 32) | (lo >> 32))
	if result < 0 {
		if negative {
			return MinValue
		}
		return MaxValue
	}

	if negative {
		return -result
	}
	return result
}

// Div returns the Q32.32 quotient, saturating on overflow.
// Division by zero saturates toward the sign of the dividend
// rather than trapping; callers guard the zero case where it matters.
func Div(a, b int64) int64 {
	if b == 0 {
		if a == 0 {
			return 0
		}
		if a < 0 {
			return MinValue
		}
		return MaxValue
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient will not fit in 64 bits when hi >= ub
	if hi >= ub {
		if negative {
			return MinValue
		}
		return MaxValue
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return MinValue
		}
		return MaxValue
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// Recip returns 1/x in Q32.32, saturating; Recip(0) saturates positive
func Recip(x int64) int64 {
	return Div(One, x)
}

// MulDiv computes (a * b) / c with a 128-bit intermediate,
// avoiding the precision loss of Mul followed by Div
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if c < 0 {
		c = -c
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		if neg {
			return MinValue
		}
		return MaxValue
	}
	q, _ := bits.Div64(hi, lo, uint64(c))
	if q > math.MaxInt64 {
		if neg {
			return MinValue
		}
		return MaxValue
	}
	r := int64(q)
	if neg {
		return -r
	}
	return r
}

// --- Helpers ---

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		if x == MinValue {
			return MaxValue
		}
		return -x
	}
	return x
}

// Sign returns -One, 0, or One
func Sign(x int64) int64 {
	if x < 0 {
		return -One
	}
	if x > 0 {
		return One
	}
	return 0
}

func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// --- Trigonometry ---

// Sin returns sine of an angle where 0..Scale maps to 0..2pi
func Sin(angle int64) int64 {
	return sinLUT[(angle>>(Shift-10))&LUTMask]
}

func Cos(angle int64) int64 {
	return cosLUT[(angle>>(Shift-10))&LUTMask]
}

// Sqrt returns the Q32.32 square root using Newton-Raphson.
// Converges within 16 iterations across the geometric ranges the
// editor produces; Sqrt of a non-positive value is 0.
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}

	// Initial guess from the highest set bit
	guess := x
	if guess > One {
		guess = One
		for guess < x>>1 {
			guess <<= 1
		}
	} else {
		guess = x >> 1
		if guess == 0 {
			guess = 1
		}
	}

	for i := 0; i < 16; i++ {
		if guess == 0 {
			return 0
		}
		next := (guess + Div(x, guess)) >> 1
		if next == guess {
			break
		}
		guess = next
	}
	return guess
}

// DistanceApprox uses the alpha-max-plus-beta-min algorithm (error ~4%).
// Cheap magnitude for paths where exactness does not matter (render culling)
func DistanceApprox(dx, dy int64) int64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}
	// dist = max + 0.375*min
	return dx + (dy >> 2) + (dy >> 3)
}
