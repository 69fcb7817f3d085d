// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kruglov

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// keychainService is the private implementation of [KeychainService].
type keychainService struct {
	// PBKDF2 iteration count. Stored in the struct so a deployment can
	// raise it as hardware gets faster; never set below minIterations.
	iterations int
}

const (
	// keySize is the AES-256 key length in bytes.
	keySize = 32

	// minIterations is the floor for PBKDF2-SHA256 stretching. Requests
	// for fewer iterations are clamped up to this value.
	minIterations = 100_000
)

// NewKeychainService constructs a [KeychainService] with the default
// PBKDF2-SHA256 iteration count of 100,000.
func NewKeychainService() KeychainService {
	return &keychainService{iterations: minIterations}
}

// EncryptAuthenticated implements [KeychainService]. It derives a fresh
// AES-256 key from passphrase and a random 16-byte salt, seals payload with
// AES-256-GCM under a random 16-byte IV, and packs everything into a single
// base64 blob: IV ‖ Salt ‖ Tag ‖ Ciphertext.
//
// Two calls with identical inputs produce different blobs because the salt
// and IV are drawn fresh from the OS CSPRNG on every call.
func (k *keychainService) EncryptAuthenticated(payload []byte, passphrase string) (string, error) {
	salt, err := randomBytes(saltSize)
	if err != nil {
		return "", fmt.Errorf("%w: generate salt: %v", ErrDerivation, err)
	}
	iv, err := randomBytes(ivSize)
	if err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	key := deriveKey(passphrase, salt, keySize, k.effectiveIterations())
	defer scrub(key)

	ciphertext, tag, err := sealGCM(payload, key, iv)
	if err != nil {
		return "", err
	}

	return packAuthenticated(iv, salt, tag, ciphertext), nil
}

// DecryptAuthenticated implements [KeychainService]. It unpacks an
// authenticated-mode blob, re-derives the key from passphrase and the
// embedded salt, and opens the ciphertext.
//
// Returns [ErrMalformedBlob] for invalid blobs and
// [ErrAuthenticationFailed] when the tag does not verify (tampering or a
// wrong passphrase). It never returns partial plaintext.
func (k *keychainService) DecryptAuthenticated(blob string, passphrase string) ([]byte, error) {
	iv, salt, tag, ciphertext, err := unpackAuthenticated(blob)
	if err != nil {
		return nil, err
	}

	key := deriveKey(passphrase, salt, keySize, k.effectiveIterations())
	defer scrub(key)

	return openGCM(ciphertext, tag, key, iv)
}

// EncryptLegacy implements [KeychainService]. It seals payload with the old
// AES-256-CBC scheme: key = SHA-256(passphrase), random 16-byte IV, PKCS#7
// padding, blob = IV ‖ Ciphertext. The output carries no integrity
// protection and the key derivation is unsalted and unstretched; use
// EncryptAuthenticated for anything new.
func (k *keychainService) EncryptLegacy(payload []byte, passphrase string) (string, error) {
	iv, err := randomBytes(ivSize)
	if err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	key := legacyKey(passphrase)
	defer scrub(key)

	ciphertext, err := sealCBC(payload, key, iv)
	if err != nil {
		return "", err
	}

	return packLegacy(iv, ciphertext), nil
}

// DecryptLegacy implements [KeychainService]. It opens a legacy-mode blob.
// A wrong passphrase or tampered ciphertext may decrypt to garbage without
// error; success is not proof of authenticity.
func (k *keychainService) DecryptLegacy(blob string, passphrase string) ([]byte, error) {
	iv, ciphertext, err := unpackLegacy(blob)
	if err != nil {
		return nil, err
	}

	key := legacyKey(passphrase)
	defer scrub(key)

	return openCBC(ciphertext, key, iv)
}

func (k *keychainService) effectiveIterations() int {
	if k.iterations < minIterations {
		return minIterations
	}
	return k.iterations
}

func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// scrub zeroes derived key material once the call that produced it is done.
// Best effort only: Go gives no guarantee the GC has not already copied the
// backing array.
func scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
