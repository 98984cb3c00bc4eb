package id

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// Generator mints identifiers for rows created during sync. Implementations
// must be safe for concurrent use; several provider workers create matches
// at once.
type Generator interface {
	NewID() (string, error)
}

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// RandomGenerator produces 26-character lowercase base32 identifiers from
// crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(buf[:])), nil
}
