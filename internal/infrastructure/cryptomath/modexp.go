package cryptomath

import "math/big"

// ModExp returns base^exponent mod modulus via least-significant-bit-first
// square-and-multiply, with all products going through Multiply. The exponent
// must be non-negative; exponent zero yields 1 mod modulus and modulus one
// yields zero. A modulus below one is a caller bug and panics rather than
// producing a sentinel value.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("cryptomath: ModExp requires a positive modulus")
	}
	if exponent.Sign() < 0 {
		panic("cryptomath: ModExp requires a non-negative exponent")
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	for e := new(big.Int).Set(exponent); e.Sign() > 0; e.Rsh(e, 1) {
		if e.Bit(0) == 1 {
			result = Multiply(result, b)
			result.Mod(result, modulus)
		}
		b = Multiply(b, b)
		b.Mod(b, modulus)
	}
	return result
}
