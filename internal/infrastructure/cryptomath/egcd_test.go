//go:build unit
// +build unit

package cryptomath

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	t.Run("satisfies the Bezout identity", func(t *testing.T) {
		pairs := [][2]int64{
			{240, 46},
			{48, 18},
			{0, 5},
			{17, 3120},
			{65537, 3120},
			{1, 1},
		}
		for _, pair := range pairs {
			a := big.NewInt(pair[0])
			b := big.NewInt(pair[1])
			g, x, y := ExtendedGCD(a, b)

			lhs := new(big.Int).Mul(a, x)
			lhs.Add(lhs, new(big.Int).Mul(b, y))
			assert.Zero(t, lhs.Cmp(g), "a=%d b=%d", pair[0], pair[1])
		}
	})

	t.Run("satisfies the Bezout identity for random large operands", func(t *testing.T) {
		rnd := mrand.New(mrand.NewSource(6))
		for i := 0; i < 10; i++ {
			a := randBig(rnd, 512)
			b := randBig(rnd, 512)
			g, x, y := ExtendedGCD(a, b)

			lhs := new(big.Int).Mul(a, x)
			lhs.Add(lhs, new(big.Int).Mul(b, y))
			assert.Zero(t, lhs.Cmp(g))
		}
	})
}

func TestGCD(t *testing.T) {
	assert.Zero(t, GCD(big.NewInt(48), big.NewInt(18)).Cmp(big.NewInt(6)))
	assert.Zero(t, GCD(big.NewInt(17), big.NewInt(3120)).Cmp(big.NewInt(1)))
	assert.Zero(t, GCD(big.NewInt(0), big.NewInt(5)).Cmp(big.NewInt(5)))
}

func TestModInverse(t *testing.T) {
	t.Run("fails when operands are not coprime", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(4), big.NewInt(8))
		require.ErrorIs(t, err, ErrNoInverse)
	})

	t.Run("returns normalized inverse for coprime pairs", func(t *testing.T) {
		m := big.NewInt(31)
		for a := int64(1); a < 31; a++ {
			x, err := ModInverse(big.NewInt(a), m)
			require.NoError(t, err)

			assert.Negative(t, x.Cmp(m))
			assert.GreaterOrEqual(t, x.Sign(), 0)

			product := new(big.Int).Mul(big.NewInt(a), x)
			product.Mod(product, m)
			assert.Zero(t, product.Cmp(big.NewInt(1)))
		}
	})

	t.Run("inverts the public exponent modulo a totient", func(t *testing.T) {
		// phi(61*53) = 3120
		e := big.NewInt(65537)
		phi := big.NewInt(3120)
		d, err := ModInverse(e, phi)
		require.NoError(t, err)

		product := new(big.Int).Mul(e, d)
		product.Mod(product, phi)
		assert.Zero(t, product.Cmp(big.NewInt(1)))
	})
}
