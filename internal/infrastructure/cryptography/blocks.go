package cryptography

import (
	"errors"
	"fmt"
	"math/big"
)

// blockSentinel prefixes every chunk before base-256 conversion. It pins the
// chunk's byte length inside the integer value, so leading zero bytes of a
// chunk survive the integer round trip.
const blockSentinel = 0x01

var (
	// ErrModulusTooSmall reports a modulus too small to hold even a single
	// message byte per block.
	ErrModulusTooSmall = errors.New("modulus too small to encode any data")

	// ErrMalformedBlock reports a decrypted block whose byte representation
	// does not start with the sentinel prefix.
	ErrMalformedBlock = errors.New("decrypted block missing sentinel prefix")
)

// MaxBlockLen returns the largest chunk byte count L such that any
// sentinel-prefixed chunk of L bytes converts to an integer strictly below n.
func MaxBlockLen(n *big.Int) int {
	return (n.BitLen()-1)/8 - 1
}

// EncodeBlocks partitions message into consecutive chunks of at most
// MaxBlockLen(n) bytes and converts each to an integer below n. Chunks are
// interpreted big-endian, most-significant byte first, behind the sentinel
// prefix. An empty message yields zero blocks.
func EncodeBlocks(message []byte, n *big.Int) ([]*big.Int, error) {
	maxLen := MaxBlockLen(n)
	if maxLen < 1 {
		return nil, fmt.Errorf("%w: modulus has %d bits", ErrModulusTooSmall, n.BitLen())
	}

	blocks := make([]*big.Int, 0, (len(message)+maxLen-1)/maxLen)
	for len(message) > 0 {
		chunkLen := maxLen
		if len(message) < chunkLen {
			chunkLen = len(message)
		}

		buf := make([]byte, 0, chunkLen+1)
		buf = append(buf, blockSentinel)
		buf = append(buf, message[:chunkLen]...)
		blocks = append(blocks, new(big.Int).SetBytes(buf))

		message = message[chunkLen:]
	}
	return blocks, nil
}

// DecodeBlocks is the exact inverse of EncodeBlocks: it strips the sentinel
// from each block and concatenates the chunks in order. Blocks outside
// [0, n) and blocks without the sentinel are rejected.
func DecodeBlocks(blocks []*big.Int, n *big.Int) ([]byte, error) {
	message := make([]byte, 0, len(blocks)*MaxBlockLen(n))
	for i, block := range blocks {
		if block.Sign() < 0 || block.Cmp(n) >= 0 {
			return nil, fmt.Errorf("%w: block %d", ErrBlockOutOfRange, i)
		}
		raw := block.Bytes()
		if len(raw) == 0 || raw[0] != blockSentinel {
			return nil, fmt.Errorf("%w: block %d", ErrMalformedBlock, i)
		}
		message = append(message, raw[1:]...)
	}
	return message, nil
}
