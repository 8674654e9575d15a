// Package keys encrypts credential material stored in the database.
package keys

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// MasterKeySize is the required master key length (AES-256)
	MasterKeySize = 32

	// EncryptedPrefix marks values sealed by MasterKeyCipher
	EncryptedPrefix = "enc:v1:"

	credentialsInfo = "deploy-admin/config-credentials"
)

// ErrNotEncrypted is returned when Decrypt gets a value without EncryptedPrefix.
var ErrNotEncrypted = errors.New("value is not encrypted")

// KeyCipher encrypts and decrypts credential strings
type KeyCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encrypted string) (string, error)
}

// MasterKeyCipher seals values with AES-256-GCM under a key derived from the
// master key with HKDF-SHA256.
type MasterKeyCipher struct {
	aead cipher.AEAD
}

// NewMasterKeyCipher creates a cipher from a 32-byte master key
func NewMasterKeyCipher(masterKey []byte) (*MasterKeyCipher, error) {
	if len(masterKey) != MasterKeySize {
		return nil, fmt.Errorf("master key must be %d bytes (AES-256), got %d", MasterKeySize, len(masterKey))
	}

	dataKey := make([]byte, MasterKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, nil, []byte(credentialsInfo)), dataKey); err != nil {
		return nil, fmt.Errorf("failed to derive data key: %w", err)
	}

	block, err := aes.NewCipher(dataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &MasterKeyCipher{aead: gcm}, nil
}

// Encrypt returns EncryptedPrefix + base64(nonce || ciphertext || tag).
// The empty string stays empty so optional fields remain distinguishable.
func (c *MasterKeyCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return EncryptedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt
func (c *MasterKeyCipher) Decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}
	if !strings.HasPrefix(encrypted, EncryptedPrefix) {
		return "", ErrNotEncrypted
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(encrypted, EncryptedPrefix))
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plaintext), nil
}

// PlaintextCipher stores values unchanged. Used when no master key is configured.
type PlaintextCipher struct{}

// Encrypt returns plaintext unchanged
func (PlaintextCipher) Encrypt(plaintext string) (string, error) { return plaintext, nil }

// Decrypt returns the value unchanged
func (PlaintextCipher) Decrypt(encrypted string) (string, error) { return encrypted, nil }

// MasterKeyFromBase64 decodes a base64-encoded master key
func MasterKeyFromBase64(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode master key: %w", err)
	}
	if len(key) != MasterKeySize {
		return nil, fmt.Errorf("master key must be %d bytes, got %d", MasterKeySize, len(key))
	}
	return key, nil
}
