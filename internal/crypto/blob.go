package crypto

import (
	"encoding/base64"
	"fmt"
)

// Blob layouts. The two formats are deliberately distinct and never
// auto-detected: an authenticated blob must only be decoded by the
// authenticated path and a legacy blob by the legacy path.
//
//	authenticated: IV(16) ‖ Salt(16) ‖ Tag(16) ‖ Ciphertext
//	legacy:        IV(16) ‖ Ciphertext
const (
	ivSize   = 16
	saltSize = 16
	tagSize  = 16

	authenticatedHeaderSize = ivSize + saltSize + tagSize
)

// packAuthenticated concatenates the authenticated-mode fields and encodes
// them as standard base64 with padding.
func packAuthenticated(iv, salt, tag, ciphertext []byte) string {
	blob := make([]byte, 0, authenticatedHeaderSize+len(ciphertext))
	blob = append(blob, iv...)
	blob = append(blob, salt...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob)
}

// unpackAuthenticated decodes an authenticated-mode blob back into its
// fields. Returns [ErrMalformedBlob] (wrapped) if the input is not valid
// base64 or decodes to fewer than 48 bytes.
func unpackAuthenticated(encoded string) (iv, salt, tag, ciphertext []byte, err error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	if len(blob) < authenticatedHeaderSize {
		return nil, nil, nil, nil, fmt.Errorf("%w: %d bytes, want at least %d",
			ErrMalformedBlob, len(blob), authenticatedHeaderSize)
	}

	iv = blob[:ivSize]
	salt = blob[ivSize : ivSize+saltSize]
	tag = blob[ivSize+saltSize : authenticatedHeaderSize]
	ciphertext = blob[authenticatedHeaderSize:]
	return iv, salt, tag, ciphertext, nil
}

// packLegacy encodes a legacy-mode blob: IV followed directly by ciphertext.
// The legacy key derivation is unsalted, so no salt field exists.
func packLegacy(iv, ciphertext []byte) string {
	blob := make([]byte, 0, ivSize+len(ciphertext))
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob)
}

// unpackLegacy decodes a legacy-mode blob. Returns [ErrMalformedBlob]
// (wrapped) on invalid base64 or fewer than 16 decoded bytes.
func unpackLegacy(encoded string) (iv, ciphertext []byte, err error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	if len(blob) < ivSize {
		return nil, nil, fmt.Errorf("%w: %d bytes, want at least %d",
			ErrMalformedBlob, len(blob), ivSize)
	}
	return blob[:ivSize], blob[ivSize:], nil
}
