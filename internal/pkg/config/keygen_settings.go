package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"prime_vault_service/internal/pkg/validators"
)

// KeyGenSettings holds the parameters for RSA key pair generation.
type KeyGenSettings struct {
	Bits int `mapstructure:"bits" validate:"required,rsakeybits"`
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("rsakeybits", validators.RSAKeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	return nil
}
