package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}

// ShortSHA256 returns the first n hex characters of the content checksum.
// Used for source URLs and executable unit IDs.
func ShortSHA256(input string, n int) string {
	sum := SHA256(input)
	if n <= 0 || n > len(sum) {
		return sum
	}
	return sum[:n]
}
