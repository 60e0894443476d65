// Package id issues Stripe-style prefixed identifiers such as "al_4fK9mP2vL3nQ".
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12
)

const (
	PrefixAirline = "al"
	PrefixOffice  = "of"
	PrefixContact = "ct"
)

var alphabetLen = big.NewInt(int64(len(alphabet)))

// Generate returns a cryptographically random base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// GenerateWithPrefix returns "prefix_<random>".
func GenerateWithPrefix(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

func NewAirlineID() (string, error) { return GenerateWithPrefix(PrefixAirline) }
func NewOfficeID() (string, error)  { return GenerateWithPrefix(PrefixOffice) }
func NewContactID() (string, error) { return GenerateWithPrefix(PrefixContact) }

// HasPrefix reports whether s looks like an id issued with prefix.
func HasPrefix(s, prefix string) bool {
	rest, ok := strings.CutPrefix(s, prefix+"_")
	if !ok || rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if strings.IndexByte(alphabet, rest[i]) < 0 {
			return false
		}
	}
	return true
}
