package strongname

import (
	"crypto/sha1"
	"encoding/hex"
)

// TokenLength is the length of a derived token in hex characters.
const TokenLength = 16

// SHA1 derives public-key tokens using the strong-name scheme.
//
// SHA1 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics (pass by value) eliminates heap
// allocations.
type SHA1 struct{}

// New creates a new SHA-1 based token deriver.
// Returns by value to avoid heap allocation (SHA1 is a zero-size type).
func New() SHA1 {
	return SHA1{}
}

// DeriveToken computes the public-key token for a public-key blob.
func (d SHA1) DeriveToken(publicKey []byte) string {
	return DeriveToken(publicKey)
}

// DeriveToken computes the public-key token for a public-key blob: the low
// 8 bytes of the SHA-1 digest, in reverse byte order, lower-case hex.
func DeriveToken(publicKey []byte) string {
	digest := sha1.Sum(publicKey)
	token := make([]byte, TokenLength/2)
	for i := range token {
		token[i] = digest[len(digest)-1-i]
	}
	return hex.EncodeToString(token)
}
