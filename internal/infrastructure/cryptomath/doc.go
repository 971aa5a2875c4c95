// Package cryptomath implements the number-theoretic building blocks for RSA:
// Karatsuba multiplication, square-and-multiply modular exponentiation, the
// extended Euclidean algorithm and the Miller-Rabin primality test. Everything
// operates on math/big integers but deliberately avoids big.Int's Exp,
// ModInverse and ProbablyPrime so the arithmetic path stays built from
// primitive operations.
package cryptomath
