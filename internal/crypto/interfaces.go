package crypto

// KeychainService is the local symmetric-encryption subsystem. It turns a
// caller-supplied passphrase into key material and seals arbitrary secret
// payloads (typically exported private keys) into self-contained text blobs
// before they cross the network. It knows nothing about HTTP or the remote
// API.
//
// Two incompatible blob formats exist. They are selected explicitly by the
// entry point, never sniffed from the blob itself:
//
//	EncryptAuthenticated / DecryptAuthenticated — AES-256-GCM, PBKDF2 key,
//	    tamper-evident. The default for all new data.
//	EncryptLegacy / DecryptLegacy — AES-256-CBC, unsalted SHA-256 key,
//	    no integrity check. Exists for blobs produced by older releases.
//
// Every method is a pure function of its arguments plus CSPRNG output:
// no state is shared between calls, so a single KeychainService may be used
// from any number of goroutines.
type KeychainService interface {
	// EncryptAuthenticated seals payload under passphrase using the
	// authenticated scheme and returns the encoded blob.
	EncryptAuthenticated(payload []byte, passphrase string) (string, error)

	// DecryptAuthenticated opens an authenticated-mode blob. Fails with
	// ErrAuthenticationFailed on tampering or a wrong passphrase, and
	// with ErrMalformedBlob on undecodable input.
	DecryptAuthenticated(blob string, passphrase string) ([]byte, error)

	// EncryptLegacy seals payload with the legacy non-authenticated
	// scheme. Provided for compatibility with consumers that still
	// decode the old format; prefer EncryptAuthenticated.
	EncryptLegacy(payload []byte, passphrase string) (string, error)

	// DecryptLegacy opens a legacy-mode blob. No integrity check is
	// performed.
	DecryptLegacy(blob string, passphrase string) ([]byte, error)
}
