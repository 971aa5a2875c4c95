// Package crypto defines the core interfaces and structures for RSA key
// material built from arithmetic primitives: key pairs as plain exponent and
// modulus integers, and the processor contract for key generation, message
// encryption/decryption and key/ciphertext persistence.
package crypto
