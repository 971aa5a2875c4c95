// Package primegen searches for probable primes of an exact bit length by
// filtering random odd candidates through the Miller-Rabin oracle.
package primegen

import (
	"errors"
	"fmt"
	"math/big"

	"prime_vault_service/internal/infrastructure/cryptomath"
	"prime_vault_service/internal/infrastructure/prand"
	"prime_vault_service/internal/pkg/logger"
)

const (
	// DefaultRounds of Miller-Rabin bound the false-positive probability
	// by 4^-20.
	DefaultRounds = 20

	// DefaultBudget caps candidate draws per prime. A random b-bit odd
	// number is prime with probability about 2/(b ln 2), so the cap leaves
	// orders of magnitude of headroom at every supported bit length.
	DefaultBudget = 100000
)

// ErrBudgetExhausted reports that the candidate retry budget ran out without
// finding a prime. Hitting it indicates a broken random source or an
// unreasonable configuration, not bad luck.
var ErrBudgetExhausted = errors.New("retry budget exhausted without finding a prime")

// Finder draws random odd candidates from a Source and tests them for
// primality until one passes.
type Finder struct {
	src    prand.Source
	rounds int
	budget int
	logger logger.Logger
}

// NewFinder returns a Finder drawing from src. rounds and budget fall back to
// the package defaults when non-positive.
func NewFinder(src prand.Source, rounds, budget int, logger logger.Logger) *Finder {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Finder{src: src, rounds: rounds, budget: budget, logger: logger}
}

// Candidate returns a random integer with exactly the requested bit length.
// The top bit is forced to guarantee the length and the bottom bit to
// guarantee oddness.
func (f *Finder) Candidate(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("candidate bit length must be at least 2, got %d", bits)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	c, err := f.src.IntBelow(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
	}
	c.SetBit(c, bits-1, 1)
	c.SetBit(c, 0, 1)
	return c, nil
}

// FindPrime returns a probable prime with exactly the requested bit length.
func (f *Finder) FindPrime(bits int) (*big.Int, error) {
	f.logger.Info("Searching for a ", bits, "-bit prime")

	for attempt := 0; attempt < f.budget; attempt++ {
		c, err := f.Candidate(bits)
		if err != nil {
			return nil, err
		}
		prime, err := cryptomath.IsProbablyPrime(c, f.rounds, f.src)
		if err != nil {
			return nil, err
		}
		if prime {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w (bits=%d, budget=%d)", ErrBudgetExhausted, bits, f.budget)
}

// FindDistinctPair returns two numerically distinct probable primes of the
// given bit length, re-drawing the second on the rare collision.
func (f *Finder) FindDistinctPair(bits int) (p, q *big.Int, err error) {
	p, err = f.FindPrime(bits)
	if err != nil {
		return nil, nil, err
	}
	for attempt := 0; attempt < f.budget; attempt++ {
		q, err = f.FindPrime(bits)
		if err != nil {
			return nil, nil, err
		}
		if p.Cmp(q) != 0 {
			return p, q, nil
		}
	}
	return nil, nil, fmt.Errorf("%w (distinct pair, bits=%d)", ErrBudgetExhausted, bits)
}
