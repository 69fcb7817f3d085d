package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// sealGCM encrypts plaintext with AES-256-GCM under key and the 16-byte iv.
// It returns the ciphertext and the 16-byte authentication tag separately so
// the blob codec can lay them out in the fixed field order.
func sealGCM(plaintext, key, iv []byte) (ciphertext, tag []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	// Seal appends the tag to the ciphertext; split it back out.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	n := len(sealed) - gcm.Overhead()
	return sealed[:n], sealed[n:], nil
}

// openGCM decrypts and verifies a GCM ciphertext+tag pair. It fails closed:
// on any tag mismatch it returns [ErrAuthenticationFailed] and no plaintext.
func openGCM(ciphertext, tag, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// sealCBC encrypts plaintext with AES-256-CBC under key and iv, applying
// PKCS#7 padding. No integrity protection is added; this exists only for
// the legacy blob format.
func sealCBC(plaintext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := padPKCS7(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// openCBC decrypts a legacy CBC ciphertext and strips the PKCS#7 padding.
// There is no authentication: a tampered ciphertext either decrypts to
// garbage or fails only on invalid padding. Callers must not treat a
// successful return as proof of authenticity.
func openCBC(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: ciphertext not block-aligned", ErrMalformedBlob)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return unpadPKCS7(plaintext, block.BlockSize())
}

func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrMalformedBlob)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("%w: invalid padding", ErrMalformedBlob)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: invalid padding", ErrMalformedBlob)
		}
	}
	return data[:len(data)-n], nil
}
