//go:build unit
// +build unit

package cryptomath

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModExp(t *testing.T) {
	t.Run("matches native exponentiation for random triples", func(t *testing.T) {
		rnd := mrand.New(mrand.NewSource(4))
		for i := 0; i < 20; i++ {
			base := randBig(rnd, 256)
			exponent := randBig(rnd, 64)
			modulus := randBig(rnd, 256)
			if modulus.Sign() == 0 {
				modulus = big.NewInt(97)
			}
			want := new(big.Int).Exp(base, exponent, modulus)
			assert.Zero(t, ModExp(base, exponent, modulus).Cmp(want))
		}
	})

	t.Run("zero exponent returns one mod modulus", func(t *testing.T) {
		rnd := mrand.New(mrand.NewSource(5))
		for _, modulus := range []*big.Int{big.NewInt(2), big.NewInt(97), randBig(rnd, 512)} {
			got := ModExp(randBig(rnd, 128), big.NewInt(0), modulus)
			assert.Zero(t, got.Cmp(big.NewInt(1)))
		}
	})

	t.Run("zero base returns zero", func(t *testing.T) {
		got := ModExp(big.NewInt(0), big.NewInt(65537), big.NewInt(3233))
		assert.Zero(t, got.Sign())
	})

	t.Run("modulus one returns zero", func(t *testing.T) {
		got := ModExp(big.NewInt(12345), big.NewInt(0), big.NewInt(1))
		assert.Zero(t, got.Sign())
		got = ModExp(big.NewInt(12345), big.NewInt(678), big.NewInt(1))
		assert.Zero(t, got.Sign())
	})

	t.Run("known value", func(t *testing.T) {
		// 4^13 mod 497 = 445
		got := ModExp(big.NewInt(4), big.NewInt(13), big.NewInt(497))
		assert.Zero(t, got.Cmp(big.NewInt(445)))
	})

	t.Run("panics on non-positive modulus", func(t *testing.T) {
		assert.Panics(t, func() { ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(0)) })
		assert.Panics(t, func() { ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(-7)) })
	})

	t.Run("panics on negative exponent", func(t *testing.T) {
		assert.Panics(t, func() { ModExp(big.NewInt(2), big.NewInt(-1), big.NewInt(7)) })
	})
}
