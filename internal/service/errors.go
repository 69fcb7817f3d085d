package service

import "errors"

var (
	// ErrEncryption is the single error kind surfaced by the secrets
	// service. It deliberately hides whether derivation, the cipher, or
	// blob decoding failed, so a caller (or an attacker driving one)
	// cannot distinguish "wrong password" from "corrupted blob".
	ErrEncryption = errors.New("encryption operation failed")

	// ErrNoPassphrase indicates that neither a per-call passphrase nor a
	// configured default passphrase is available.
	ErrNoPassphrase = errors.New("no passphrase provided")

	// ErrUnsupportedChain indicates a chain identifier the API does not
	// accept; rejected client-side before any request is built.
	ErrUnsupportedChain = errors.New("unsupported chain")
)
