package cipher

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// KeySize is the length of a Sealed key in bytes.
	KeySize   = 32
	nonceSize = 24
)

// Sealed encrypts credentials with NaCl secretbox.
type Sealed struct {
	key [KeySize]byte
}

func NewSealed(key [KeySize]byte) *Sealed {
	return &Sealed{key: key}
}

func (c *Sealed) Obfuscate(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &c.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (c *Sealed) Reveal(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDecode, err)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("%w: ciphertext too short", kerrors.ErrDecode)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", fmt.Errorf("%w: authentication failed", kerrors.ErrDecode)
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: result is not valid UTF-8", kerrors.ErrDecode)
	}

	return string(plain), nil
}

// LoadOrCreateKey reads a key file, creating it with a random key if absent.
func LoadOrCreateKey(path string) ([KeySize]byte, error) {
	var key [KeySize]byte

	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != KeySize {
			return key, fmt.Errorf("%w: %s holds %d bytes, want %d", kerrors.ErrInvalidKey, path, len(data), KeySize)
		}
		copy(key[:], data)
		return key, nil
	}
	if !os.IsNotExist(err) {
		return key, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return key, fmt.Errorf("failed to generate key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return key, fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(path, key[:], 0600); err != nil {
		return key, fmt.Errorf("failed to write key file %s: %w", path, err)
	}

	return key, nil
}
