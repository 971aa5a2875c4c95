// Package prand provides the random sources feeding prime generation. The
// secure source wraps the operating system CSPRNG and is the only one
// production code constructs; the linear congruential variant exists solely
// to demonstrate prime search against a deterministic stream.
package prand

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Source is an explicit randomness capability. Passing it by handle keeps
// prime generation deterministic under test without global state.
type Source interface {
	// IntBelow returns a uniformly distributed integer in [0, max).
	// max must be positive.
	IntBelow(max *big.Int) (*big.Int, error)
}

// Secure draws from crypto/rand. This is the production source for all key
// material.
type Secure struct{}

// NewSecure returns a source backed by the operating system CSPRNG.
func NewSecure() Secure {
	return Secure{}
}

// IntBelow returns a uniform random integer in [0, max).
func (Secure) IntBelow(max *big.Int) (*big.Int, error) {
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("failed to read from system entropy source: %w", err)
	}
	return n, nil
}
