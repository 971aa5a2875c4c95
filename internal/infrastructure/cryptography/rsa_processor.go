package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	cryptoDomain "prime_vault_service/internal/domain/crypto"
	"prime_vault_service/internal/infrastructure/cryptomath"
	"prime_vault_service/internal/infrastructure/prand"
	"prime_vault_service/internal/infrastructure/primegen"
	"prime_vault_service/internal/pkg/config"
	"prime_vault_service/internal/pkg/logger"
)

// PublicExponent is the fixed public exponent e = 2^16 + 1.
const PublicExponent = 65537

// maxExponentRetries bounds prime regeneration when gcd(e, phi) != 1. At
// supported key sizes a single retry is already rare.
const maxExponentRetries = 5

// ErrInvalidEncoding reports decrypted bytes that are not valid UTF-8. It
// signals a key mismatch or corrupted ciphertext, not an arithmetic failure.
var ErrInvalidEncoding = errors.New("decrypted bytes are not valid UTF-8")

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	finder *primegen.Finder
	logger logger.Logger
}

// NewRSAProcessor creates a new rsaProcessor drawing prime candidates from
// the operating system CSPRNG.
func NewRSAProcessor(logger logger.Logger) (cryptoDomain.RSAProcessor, error) {
	finder := primegen.NewFinder(prand.NewSecure(), primegen.DefaultRounds, primegen.DefaultBudget, logger)
	return &rsaProcessor{
		finder: finder,
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified modulus bit size.
// Each prime carries half the modulus size; e is fixed at 65537 and d is its
// inverse modulo the totient. The primes and the totient are discarded.
func (r *rsaProcessor) GenerateKeys(bits int) (*cryptoDomain.PrivateKey, *cryptoDomain.PublicKey, error) {
	settings := &config.KeyGenSettings{Bits: bits}
	if err := settings.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid key size: %w", err)
	}

	e := big.NewInt(PublicExponent)
	for attempt := 0; attempt < maxExponentRetries; attempt++ {
		p, q, err := r.finder.FindDistinctPair(bits / 2)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate primes: %w", err)
		}

		n := cryptomath.Multiply(p, q)
		phi := cryptomath.Multiply(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)

		// e must be invertible mod phi. Draw fresh primes on failure
		// instead of falling back to a weaker exponent.
		if cryptomath.GCD(e, phi).Cmp(big.NewInt(1)) != 0 {
			r.logger.Warn("Public exponent not coprime to totient, regenerating primes")
			continue
		}

		d, err := cryptomath.ModInverse(e, phi)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to invert public exponent: %w", err)
		}

		r.logger.Info("Generated ", bits, "-bit RSA key pair")
		privateKey := &cryptoDomain.PrivateKey{D: d, N: n}
		publicKey := &cryptoDomain.PublicKey{E: e, N: n}
		return privateKey, publicKey, nil
	}
	return nil, nil, fmt.Errorf("public exponent %d not invertible after %d attempts", PublicExponent, maxExponentRetries)
}

// Encrypt encodes plainText into message blocks sized to the modulus and
// encrypts each block with the public key, preserving block order.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *cryptoDomain.PublicKey) ([]*big.Int, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	blocks, err := EncodeBlocks(plainText, publicKey.N)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	cipherBlocks := make([]*big.Int, 0, len(blocks))
	for _, m := range blocks {
		c, err := EncryptBlock(m, publicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt block: %w", err)
		}
		cipherBlocks = append(cipherBlocks, c)
	}

	r.logger.Info("RSA encryption succeeded, ", len(cipherBlocks), " block(s)")
	return cipherBlocks, nil
}

// Decrypt decrypts ciphertext blocks with the private key and reassembles the
// original message bytes.
func (r *rsaProcessor) Decrypt(blocks []*big.Int, privateKey *cryptoDomain.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	plainBlocks := make([]*big.Int, 0, len(blocks))
	for _, c := range blocks {
		m, err := DecryptBlock(c, privateKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt block: %w", err)
		}
		plainBlocks = append(plainBlocks, m)
	}

	message, err := DecodeBlocks(plainBlocks, privateKey.N)
	if err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}
	if !utf8.Valid(message) {
		return nil, fmt.Errorf("%w: key mismatch or corrupted ciphertext", ErrInvalidEncoding)
	}

	r.logger.Info("RSA decryption succeeded")
	return message, nil
}
