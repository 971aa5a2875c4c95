package cryptography

import (
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	cryptoDomain "prime_vault_service/internal/domain/crypto"
)

var (
	// ErrMalformedKeyFile reports a key file that does not hold exactly two
	// decimal integers.
	ErrMalformedKeyFile = errors.New("malformed key file")

	// ErrMalformedCiphertext reports a ciphertext file with a line that is
	// not a decimal integer.
	ErrMalformedCiphertext = errors.New("malformed ciphertext file")
)

// SavePrivateKeyToFile saves the private key as two decimal integers, d then
// n, one per line.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *cryptoDomain.PrivateKey, filename string) error {
	if err := privateKey.Validate(); err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	if err := writeKeyFile(filename, privateKey.D, privateKey.N); err != nil {
		return err
	}
	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the public key as two decimal integers, e then n,
// one per line.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *cryptoDomain.PublicKey, filename string) error {
	if err := publicKey.Validate(); err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}
	if err := writeKeyFile(filename, publicKey.E, publicKey.N); err != nil {
		return err
	}
	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads a private key from a two-integer key file.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoDomain.PrivateKey, error) {
	d, n, err := readKeyFile(privateKeyPath)
	if err != nil {
		return nil, err
	}
	return &cryptoDomain.PrivateKey{D: d, N: n}, nil
}

// ReadPublicKey reads a public key from a two-integer key file.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*cryptoDomain.PublicKey, error) {
	e, n, err := readKeyFile(publicKeyPath)
	if err != nil {
		return nil, err
	}
	return &cryptoDomain.PublicKey{E: e, N: n}, nil
}

// SaveCiphertextToFile saves ciphertext blocks as decimal integers, one per
// line, in block order.
func (r *rsaProcessor) SaveCiphertextToFile(blocks []*big.Int, filename string) error {
	var sb strings.Builder
	for _, block := range blocks {
		sb.WriteString(block.Text(10))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Clean(filename), []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write ciphertext file: %w", err)
	}
	r.logger.Info("Saved ciphertext ", filename, " (", len(blocks), " block(s))")
	return nil
}

// ReadCiphertext reads an ordered sequence of ciphertext blocks, one decimal
// integer per line. Blank lines are skipped.
func (r *rsaProcessor) ReadCiphertext(ciphertextPath string) ([]*big.Int, error) {
	file, err := os.Open(filepath.Clean(ciphertextPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read ciphertext file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.Warn("failed to close ciphertext file: ", err)
		}
	}()

	var blocks []*big.Int
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		block, ok := new(big.Int).SetString(line, 10)
		if !ok {
			return nil, fmt.Errorf("%w: line %d is not a decimal integer", ErrMalformedCiphertext, lineNo)
		}
		blocks = append(blocks, block)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read ciphertext file: %w", err)
	}
	return blocks, nil
}

func writeKeyFile(filename string, exponent, modulus *big.Int) error {
	content := exponent.Text(10) + "\n" + modulus.Text(10) + "\n"
	if err := os.WriteFile(filepath.Clean(filename), []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

func readKeyFile(path string) (exponent, modulus *big.Int, err error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read key file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) != 2 {
		return nil, nil, fmt.Errorf("%w: want 2 integers, got %d", ErrMalformedKeyFile, len(fields))
	}
	exponent, ok := new(big.Int).SetString(fields[0], 10)
	if !ok {
		return nil, nil, fmt.Errorf("%w: exponent is not a decimal integer", ErrMalformedKeyFile)
	}
	modulus, ok = new(big.Int).SetString(fields[1], 10)
	if !ok {
		return nil, nil, fmt.Errorf("%w: modulus is not a decimal integer", ErrMalformedKeyFile)
	}
	return exponent, modulus, nil
}
