package crypto

import "errors"

var (
	// ErrMalformedBlob indicates the encoded blob is not valid base64 or
	// decodes to fewer bytes than the mode's fixed field layout requires.
	ErrMalformedBlob = errors.New("malformed encrypted blob")

	// ErrAuthenticationFailed indicates the GCM authentication tag did not
	// verify: the blob was tampered with or the passphrase is wrong. No
	// plaintext is ever returned alongside this error.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDerivation indicates an unexpected internal failure while
	// producing key material. Not retryable.
	ErrDerivation = errors.New("key derivation failed")
)
