package cryptomath

import "math/big"

// karatsubaCutoff is the operand bit length below which Multiply falls back to
// native multiplication. Operands under this size fit in a machine word, where
// the recursion overhead dominates any gain.
const karatsubaCutoff = 64

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Multiply returns a*b using recursive Karatsuba multiplication. The result is
// exact; operands of unequal length, zero and negative values are all handled.
func Multiply(a, b *big.Int) *big.Int {
	if a.Sign() < 0 || b.Sign() < 0 {
		product := Multiply(new(big.Int).Abs(a), new(big.Int).Abs(b))
		if a.Sign()*b.Sign() < 0 {
			product.Neg(product)
		}
		return product
	}
	if a.BitLen() < karatsubaCutoff || b.BitLen() < karatsubaCutoff {
		return new(big.Int).Mul(a, b)
	}

	// Split both operands at half the larger operand's bit length.
	m := uint(max(a.BitLen(), b.BitLen()) / 2)
	mask := new(big.Int).Sub(new(big.Int).Lsh(one, m), one)

	aHigh := new(big.Int).Rsh(a, m)
	aLow := new(big.Int).And(a, mask)
	bHigh := new(big.Int).Rsh(b, m)
	bLow := new(big.Int).And(b, mask)

	// Three sub-products instead of four: the middle term is recovered from
	// (aHigh+aLow)(bHigh+bLow) - z2 - z0.
	z0 := Multiply(aLow, bLow)
	z2 := Multiply(aHigh, bHigh)
	z1 := Multiply(new(big.Int).Add(aHigh, aLow), new(big.Int).Add(bHigh, bLow))
	z1.Sub(z1, z2)
	z1.Sub(z1, z0)

	product := new(big.Int).Lsh(z2, 2*m)
	product.Add(product, z1.Lsh(z1, m))
	product.Add(product, z0)
	return product
}
