package prand

import (
	"fmt"
	"math/big"
)

// Knuth's MMIX linear congruential constants, modulus 2^64.
const (
	lcgMult = 6364136223846793005
	lcgIncr = 1442695040888963407
)

// InsecureLCG is a linear congruential generator: state' = a*state + c mod
// 2^64, with wide values assembled from successive 64-bit outputs.
//
// Its entire future output is predictable from a handful of observations. The
// type name carries the warning on purpose: it exists to demonstrate prime
// search against a deterministic stream and must never back real key
// material.
type InsecureLCG struct {
	state uint64
}

// NewInsecureLCG seeds a demonstration-only generator.
func NewInsecureLCG(seed int64) *InsecureLCG {
	return &InsecureLCG{state: uint64(seed)}
}

func (g *InsecureLCG) next() uint64 {
	g.state = g.state*lcgMult + lcgIncr
	return g.state
}

// IntBelow returns the next generator value reduced mod max. The reduction is
// slightly biased, which is irrelevant for a source that is insecure by
// construction.
func (g *InsecureLCG) IntBelow(max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("IntBelow bound must be positive, got %s", max.String())
	}

	words := (max.BitLen() + 63) / 64
	v := new(big.Int)
	for i := 0; i < words; i++ {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(g.next()))
	}
	return v.Mod(v, max), nil
}
