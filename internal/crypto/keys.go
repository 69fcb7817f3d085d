package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// deriveKey turns a passphrase into key material of the requested length.
//
// A passphrase whose byte length already covers length is used directly:
// its first length bytes become the key and no stretching is performed.
// Shorter passphrases go through PBKDF2-SHA256 with the given salt and
// iteration count.
//
// The returned slice is always freshly allocated so the caller may scrub
// it without touching the passphrase.
func deriveKey(passphrase string, salt []byte, length, iterations int) []byte {
	p := []byte(passphrase)
	if len(p) >= length {
		key := make([]byte, length)
		copy(key, p[:length])
		return key
	}
	return pbkdf2.Key(p, salt, iterations, length, sha256.New)
}

// legacyKey derives the fixed 32-byte key used by the legacy CBC scheme:
// a single unsalted SHA-256 of the passphrase. Kept only for compatibility
// with blobs produced under the old scheme; it offers no brute-force
// resistance and must not be adopted for new designs.
func legacyKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	key := make([]byte, len(sum))
	copy(key, sum[:])
	return key
}
