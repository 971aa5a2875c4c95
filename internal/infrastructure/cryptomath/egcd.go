package cryptomath

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoInverse reports that a modular inverse does not exist because the
// operands are not coprime.
var ErrNoInverse = errors.New("modular inverse does not exist")

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b), using
// recursive Euclidean reduction while tracking the Bezout coefficients.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), new(big.Int), big.NewInt(1)
	}

	// DivMod keeps the remainder non-negative, so the recursion terminates
	// for signed intermediates as well.
	quo, rem := new(big.Int).DivMod(b, a, new(big.Int))

	g, x1, y1 := ExtendedGCD(rem, a)
	x = new(big.Int).Sub(y1, Multiply(quo, x1))
	return g, x, x1
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(a, b)
	return g
}

// ModInverse returns x in [0, m) with (a*x) mod m == 1. It fails with
// ErrNoInverse when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd is %s", ErrNoInverse, g.String())
	}
	return x.Mod(x, m), nil
}
