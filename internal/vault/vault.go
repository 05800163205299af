// Package vault encrypts platform credentials before they reach the store.
// Ciphertext is AES-256-GCM under a key derived from a configured secret, so
// payloads written in one process lifetime stay readable after a restart.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Fixed derivation salt. The secret itself is the only confidential input;
// the salt just domain-separates this key from other uses of the secret.
var kdfSalt = []byte("jobflow-credential-vault")

var ErrKeyRequired = errors.New("vault: encryption key is required")

type Vault struct {
	aead cipher.AEAD
}

// New derives the cipher key from secret. An empty secret is a configuration
// error: callers must fail startup rather than fall back to a random key that
// would strand stored ciphertexts on restart.
func New(secret string) (*Vault, error) {
	if secret == "" {
		return nil, ErrKeyRequired
	}
	key, err := scrypt.Key([]byte(secret), kdfSalt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("vault: derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("vault: init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("vault: init gcm: %w", err)
	}
	return &Vault{aead: aead}, nil
}

// Encrypt seals plaintext and returns base64(nonce || ciphertext).
func (v *Vault) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("vault: generate nonce: %w", err)
	}
	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (v *Vault) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("vault: decode ciphertext: %w", err)
	}
	if len(raw) < v.aead.NonceSize() {
		return "", errors.New("vault: ciphertext too short")
	}
	nonce, sealed := raw[:v.aead.NonceSize()], raw[v.aead.NonceSize():]
	plain, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("vault: decrypt: %w", err)
	}
	return string(plain), nil
}
