//go:build unit
// +build unit

package cryptomath

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prime_vault_service/internal/infrastructure/prand"
)

func TestIsProbablyPrime(t *testing.T) {
	src := prand.NewSecure()

	t.Run("known small numbers", func(t *testing.T) {
		tests := []struct {
			n     int64
			prime bool
		}{
			{0, false},
			{1, false},
			{2, true},
			{3, true},
			{4, false},
			{17, true},
			{37, true},
			{41, true},
			{1009, true},
			{7919, true},
			{104729, true},
			{1763, false},   // 41 * 43
			{252601, false}, // Carmichael number with no small factors
		}
		for _, tt := range tests {
			got, err := IsProbablyPrime(big.NewInt(tt.n), 20, src)
			require.NoError(t, err)
			assert.Equal(t, tt.prime, got, "n=%d", tt.n)
		}
	})

	t.Run("agrees with an independent check on large primes", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			p, err := rand.Prime(rand.Reader, 256)
			require.NoError(t, err)

			got, err := IsProbablyPrime(p, 20, src)
			require.NoError(t, err)
			assert.True(t, got)
		}
	})

	t.Run("rejects a semiprime of two large primes", func(t *testing.T) {
		p, err := rand.Prime(rand.Reader, 128)
		require.NoError(t, err)
		q, err := rand.Prime(rand.Reader, 128)
		require.NoError(t, err)

		got, err := IsProbablyPrime(new(big.Int).Mul(p, q), 20, src)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("verdicts hold under a deterministic witness source", func(t *testing.T) {
		lcg := prand.NewInsecureLCG(42)

		got, err := IsProbablyPrime(big.NewInt(7919), 20, lcg)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = IsProbablyPrime(big.NewInt(1763), 20, lcg)
		require.NoError(t, err)
		assert.False(t, got)
	})
}
