package common

import "math"

// Subtractive is Knuth's subtractive generator (TAOCP vol. 2, 3.6) with the
// seeding and sampling used by System.Random(int) in .NET, so a seed saved
// by a .NET client shuffles to the same deck here.
//
// A Subtractive is not safe for concurrent use.
type Subtractive struct {
	state  [56]int32
	inext  int
	inextp int
}

const (
	subMBig  = math.MaxInt32
	subMSeed = 161803398
)

// NewSubtractive seeds a generator. Only |seed| matters; math.MinInt32 is
// treated as math.MaxInt32.
func NewSubtractive(seed int32) *Subtractive {
	g := &Subtractive{}

	sub := seed
	if seed == math.MinInt32 {
		sub = math.MaxInt32
	} else if seed < 0 {
		sub = -seed
	}

	mj := int32(subMSeed) - sub
	g.state[55] = mj
	mk := int32(1)
	for i := 1; i < 55; i++ {
		ii := (21 * i) % 55
		g.state[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += subMBig
		}
		mj = g.state[ii]
	}
	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			g.state[i] -= g.state[1+(i+30)%55]
			if g.state[i] < 0 {
				g.state[i] += subMBig
			}
		}
	}
	g.inext = 0
	g.inextp = 21
	return g
}

// Sample returns the next raw value in [0, math.MaxInt32).
func (g *Subtractive) Sample() int32 {
	inext := g.inext + 1
	if inext >= 56 {
		inext = 1
	}
	inextp := g.inextp + 1
	if inextp >= 56 {
		inextp = 1
	}

	v := g.state[inext] - g.state[inextp]
	if v == subMBig {
		v--
	}
	if v < 0 {
		v += subMBig
	}
	g.state[inext] = v
	g.inext = inext
	g.inextp = inextp
	return v
}

// Float64 returns a value in [0.0, 1.0).
func (g *Subtractive) Float64() float64 {
	return float64(g.Sample()) * (1.0 / subMBig)
}

// Range returns a value in [min, max). When max == min it returns min but
// still draws a sample, keeping the stream aligned with System.Random.Next.
// An inverted range (max < min) returns min without drawing.
func (g *Subtractive) Range(min, max int) int {
	if max < min {
		return min
	}
	return int(g.Float64()*float64(max-min)) + min
}
