package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type passwordGenerator struct{}

// NewPasswordGenerator creates a generator drawing uniformly from [A-Za-z0-9] with
// crypto/rand.
func NewPasswordGenerator() PasswordGenerator {
	return &passwordGenerator{}
}

// Generate returns a random password of the given length. Length must be between 1
// and 255.
func (g *passwordGenerator) Generate(length int) (string, error) {
	if length < 1 {
		return "", errors.New("length must be at least 1")
	}
	if length > 255 {
		return "", errors.New("length must not exceed 255")
	}

	password := make([]byte, length)
	charsLen := big.NewInt(int64(len(passwordChars)))

	for i := range password {
		n, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		password[i] = passwordChars[n.Int64()]
	}

	return string(password), nil
}

// Validate checks that password only contains [A-Za-z0-9].
func (g *passwordGenerator) Validate(password string) error {
	if len(password) == 0 {
		return errors.New("password cannot be empty")
	}

	for _, c := range password {
		if !isAlphanumeric(c) {
			return errors.New("password must contain only alphanumeric characters [A-Za-z0-9]")
		}
	}

	return nil
}

func isAlphanumeric(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
