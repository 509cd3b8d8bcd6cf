package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	guessesPerSecond = 1e10
	secondsPerYear   = 365 * 24 * 60 * 60
)

// Estimator estimates how long a password resists an offline attack, in years.
type Estimator interface {
	Name() string
	Years(password string) float64
}

// BruteForce assumes an exhaustive search over the alphabet the password draws from.
type BruteForce struct{}

func (BruteForce) Name() string { return "bruteforce" }

func (BruteForce) Years(password string) float64 {
	var upper, lower, number, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			number = true
		case strings.ContainsRune(Specials, r):
			special = true
		}
	}

	charset := 0
	if upper {
		charset += 26
	}
	if lower {
		charset += 26
	}
	if number {
		charset += 10
	}
	if special {
		charset += len(Specials)
	}
	if charset == 0 {
		charset = 1
	}

	combinations := math.Pow(float64(charset), float64(len(password)))
	return combinations / guessesPerSecond / secondsPerYear
}

// Zxcvbn uses the zxcvbn pattern matcher, which is far less optimistic about dictionary
// words and keyboard walks than BruteForce.
type Zxcvbn struct{}

func (Zxcvbn) Name() string { return "zxcvbn" }

func (Zxcvbn) Years(password string) float64 {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).CrackTime / secondsPerYear
}

func ParseEstimator(name string) (Estimator, error) {
	switch strings.ToLower(name) {
	case "", "bruteforce":
		return BruteForce{}, nil
	case "zxcvbn":
		return Zxcvbn{}, nil
	}
	return nil, fmt.Errorf("unknown estimator %q, use bruteforce or zxcvbn", name)
}
