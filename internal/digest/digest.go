package digest

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Digest is a 160-bit SHA-1 value rendered as 40 lowercase hex characters.
type Digest string

const hexLen = 40

// ErrInvalidFormat rejects caller-supplied digests that are not exactly 40
// hex characters after normalization.
var ErrInvalidFormat = errString("invalid SHA-1 digest format")

type errString string

func (e errString) Error() string { return string(e) }

// Of hashes a plaintext identifier. A single unkeyed SHA-1 pass, no salt,
// no iteration: the corpus identifiers are hashed with exactly this
// convention, so both sides of every comparison must use it.
func Of(plaintext string) Digest {
	sum := sha1.Sum([]byte(plaintext))
	return Digest(hex.EncodeToString(sum[:]))
}

// Normalize trims and lowercases a caller-supplied digest string and
// validates length and character set. Idempotent for valid input.
func Normalize(input string) (Digest, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) != hexLen {
		return "", ErrInvalidFormat
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", ErrInvalidFormat
		}
	}
	return Digest(s), nil
}
