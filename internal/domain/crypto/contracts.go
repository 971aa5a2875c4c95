package crypto

import "math/big"

// RSAProcessor handles RSA key generation, encryption and decryption built on
// the project's own arithmetic primitives rather than crypto/rsa. Messages map
// to ordered sequences of integer blocks, each strictly below the modulus;
// block order is correctness-critical since blocks are transformed
// independently and reassembled positionally.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified modulus bit
	// size. The bit size must be even and at least 16; each prime carries
	// half the modulus size.
	GenerateKeys(bits int) (*PrivateKey, *PublicKey, error)

	// Encrypt encodes plainText into message blocks and encrypts each with
	// the public key. Returns one ciphertext block per message block, in
	// message order.
	Encrypt(plainText []byte, publicKey *PublicKey) ([]*big.Int, error)

	// Decrypt decrypts ciphertext blocks with the private key and reassembles
	// the original bytes. Blocks at or above the modulus and payloads that do
	// not decode to valid UTF-8 are rejected with distinct errors.
	Decrypt(blocks []*big.Int, privateKey *PrivateKey) ([]byte, error)

	// SavePrivateKeyToFile persists the private key as two decimal integers,
	// exponent then modulus, one per line.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// SavePublicKeyToFile persists the public key in the same two-integer
	// format as the private key.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// ReadPrivateKey reads a private key from a two-integer key file.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// ReadPublicKey reads a public key from a two-integer key file.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)

	// SaveCiphertextToFile persists ciphertext blocks as decimal integers,
	// one per line, preserving block order.
	SaveCiphertextToFile(blocks []*big.Int, filename string) error

	// ReadCiphertext reads an ordered sequence of ciphertext blocks from a
	// file written by SaveCiphertextToFile.
	ReadCiphertext(ciphertextPath string) ([]*big.Int, error)
}
