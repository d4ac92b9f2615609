// Package id creates opaque identifiers for requests and import runs.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	defaultByteLength = 12
	maxExternalLength = 64
)

type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	byteLength int
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{byteLength: defaultByteLength}
}

func (g *RandomGenerator) NewID() (string, error) {
	n := defaultByteLength
	if g != nil && g.byteLength > 0 {
		n = g.byteLength
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ValidExternal reports whether an id supplied by a caller is safe to reuse in
// logs and response headers.
func ValidExternal(v string) bool {
	if v == "" || len(v) > maxExternalLength {
		return false
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
