package validators

import (
	"github.com/go-playground/validator/v10"
)

// MinRSAKeyBits is the smallest modulus size that still yields two distinct
// primes and an invertible public exponent.
const MinRSAKeyBits = 16

// RSAKeyBitsValidation validates an RSA modulus bit size: it must be even, so
// each prime carries half the modulus size, and at least MinRSAKeyBits.
func RSAKeyBitsValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Int()

	if bits < MinRSAKeyBits {
		return false
	}
	return bits%2 == 0
}
