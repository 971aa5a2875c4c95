package crypto

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-playground/validator/v10"
)

// PublicKey is the published half of an RSA key pair: the fixed public
// exponent e and the modulus n = p*q. The prime factors are never part of the
// key material.
type PublicKey struct {
	E *big.Int `mapstructure:"e" validate:"required"`
	N *big.Int `mapstructure:"n" validate:"required"`
}

// Validate for validating PublicKey struct
func (k *PublicKey) Validate() error {
	if err := validateKeyStruct(k); err != nil {
		return err
	}
	if k.N.Cmp(big.NewInt(1)) <= 0 {
		return fmt.Errorf("validation failed: modulus must be greater than 1")
	}
	return nil
}

// PrivateKey is the secret half of an RSA key pair: the private exponent d
// (the inverse of e modulo the totient) and the shared modulus n.
type PrivateKey struct {
	D *big.Int `mapstructure:"d" validate:"required"`
	N *big.Int `mapstructure:"n" validate:"required"`
}

// Validate for validating PrivateKey struct
func (k *PrivateKey) Validate() error {
	if err := validateKeyStruct(k); err != nil {
		return err
	}
	if k.N.Cmp(big.NewInt(1)) <= 0 {
		return fmt.Errorf("validation failed: modulus must be greater than 1")
	}
	return nil
}

func validateKeyStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
