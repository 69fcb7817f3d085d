// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kruglov

package service

import (
	"fmt"

	"github.com/pkruglov/chainvault-go/internal/crypto"
)

// secretsService is the private implementation of [SecretsService].
//
// It composes the keychain with a passphrase precedence rule: an explicit
// per-call passphrase always wins over the default configured at
// construction. Every failure is flattened into [ErrEncryption] with the
// cause carried in the message only, so errors.Is cannot distinguish a
// wrong password from a corrupted blob.
type secretsService struct {
	keychain          crypto.KeychainService
	defaultPassphrase string
}

// NewSecretsService constructs a [SecretsService] around keychain.
// defaultPassphrase may be empty, in which case every call must supply its
// own passphrase.
func NewSecretsService(keychain crypto.KeychainService, defaultPassphrase string) SecretsService {
	return &secretsService{
		keychain:          keychain,
		defaultPassphrase: defaultPassphrase,
	}
}

// EncryptSecret implements [SecretsService].
func (s *secretsService) EncryptSecret(plaintext, passphrase string) (string, error) {
	pass, err := s.resolvePassphrase(passphrase)
	if err != nil {
		return "", err
	}

	blob, err := s.keychain.EncryptAuthenticated([]byte(plaintext), pass)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	return blob, nil
}

// DecryptSecret implements [SecretsService].
func (s *secretsService) DecryptSecret(blob, passphrase string) (string, error) {
	pass, err := s.resolvePassphrase(passphrase)
	if err != nil {
		return "", err
	}

	plaintext, err := s.keychain.DecryptAuthenticated(blob, pass)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	return string(plaintext), nil
}

// EncryptSecretLegacy implements [SecretsService].
func (s *secretsService) EncryptSecretLegacy(plaintext, passphrase string) (string, error) {
	pass, err := s.resolvePassphrase(passphrase)
	if err != nil {
		return "", err
	}

	blob, err := s.keychain.EncryptLegacy([]byte(plaintext), pass)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	return blob, nil
}

// DecryptSecretLegacy implements [SecretsService].
func (s *secretsService) DecryptSecretLegacy(blob, passphrase string) (string, error) {
	pass, err := s.resolvePassphrase(passphrase)
	if err != nil {
		return "", err
	}

	plaintext, err := s.keychain.DecryptLegacy(blob, pass)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	return string(plaintext), nil
}

// resolvePassphrase applies the precedence rule: per-call passphrase first,
// configured default second, error when both are empty.
func (s *secretsService) resolvePassphrase(passphrase string) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	if s.defaultPassphrase != "" {
		return s.defaultPassphrase, nil
	}
	return "", ErrNoPassphrase
}
