// Package passgen generates random passwords in the style of pass(1).
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// Alphanumeric is the character set used without symbols.
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Symbols is the OWASP password special character list.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Charset returns the characters a password is drawn from.
func Charset(noSymbols bool) string {
	if noSymbols {
		return Alphanumeric
	}
	return Alphanumeric + Symbols
}

// Generate returns a password of length characters drawn uniformly from the
// charset using crypto/rand.
func Generate(length int, noSymbols bool) (string, error) {
	return generate(rand.Reader, length, Charset(noSymbols))
}

func generate(random io.Reader, length int, charset string) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(charset)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(random, max)
		if err != nil {
			return "", fmt.Errorf("failed to read randomness: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
