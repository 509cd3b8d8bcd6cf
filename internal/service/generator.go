package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	SuggestionLength = 16

	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	numberChars = "0123456789"
	allChars    = upperChars + lowerChars + numberChars + Specials
)

// GeneratePassword returns a random password with at least one character of every class.
func GeneratePassword() (string, error) {
	password := make([]byte, 0, SuggestionLength)
	for _, set := range []string{upperChars, lowerChars, numberChars, Specials} {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < SuggestionLength {
		c, err := pick(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates
	for i := len(password) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("error reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
