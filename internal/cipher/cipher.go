package cipher

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
)

// DefaultKey is the obfuscation key used by existing installations.
// It is embedded in the binary and offers no confidentiality.
var DefaultKey = []byte("t-countdown-2024-encrypt-key!@#$")

// Cipher reversibly encodes credentials for storage.
type Cipher interface {
	Obfuscate(plain string) (string, error)
	Reveal(encoded string) (string, error)
}

// XOR obfuscates by XOR-ing each byte with a repeating key.
type XOR struct {
	key []byte
}

// NewXOR returns an XOR cipher owning a copy of key.
func NewXOR(key []byte) (*XOR, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("xor cipher: %w: key is empty", kerrors.ErrInvalidKey)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &XOR{key: k}, nil
}

// Default returns an XOR cipher using DefaultKey.
func Default() *XOR {
	c, _ := NewXOR(DefaultKey)
	return c
}

func (c *XOR) apply(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}

// Obfuscate never fails.
func (c *XOR) Obfuscate(plain string) (string, error) {
	return base64.StdEncoding.EncodeToString(c.apply([]byte(plain))), nil
}

func (c *XOR) Reveal(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDecode, err)
	}

	plain := c.apply(raw)
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: result is not valid UTF-8", kerrors.ErrDecode)
	}

	return string(plain), nil
}
