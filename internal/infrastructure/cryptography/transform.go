package cryptography

import (
	"errors"
	"fmt"
	"math/big"

	"prime_vault_service/internal/domain/crypto"
	"prime_vault_service/internal/infrastructure/cryptomath"
)

// ErrBlockOutOfRange reports a message or ciphertext block outside [0, n).
var ErrBlockOutOfRange = errors.New("block value not in [0, modulus)")

// EncryptBlock computes m^e mod n for a single message block. It is a pure
// function; m must lie in [0, n).
func EncryptBlock(m *big.Int, publicKey *crypto.PublicKey) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(publicKey.N) >= 0 {
		return nil, fmt.Errorf("%w: message block has %d bits, modulus %d", ErrBlockOutOfRange, m.BitLen(), publicKey.N.BitLen())
	}
	return cryptomath.ModExp(m, publicKey.E, publicKey.N), nil
}

// DecryptBlock computes c^d mod n for a single ciphertext block. It is a pure
// function; c must lie in [0, n).
func DecryptBlock(c *big.Int, privateKey *crypto.PrivateKey) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(privateKey.N) >= 0 {
		return nil, fmt.Errorf("%w: ciphertext block has %d bits, modulus %d", ErrBlockOutOfRange, c.BitLen(), privateKey.N.BitLen())
	}
	return cryptomath.ModExp(c, privateKey.D, privateKey.N), nil
}
