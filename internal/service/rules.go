package service

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	MinLength = 12
	// Specials is the only set of special characters the rules accept.
	Specials = "@#$"
)

var (
	commonPasswords = []string{"password", "123456", "qwerty", "admin123"}
	keyboardPattern = regexp.MustCompile(`qwerty|asdf|zxcv`)
)

// Variety holds the composition checks of a password.
type Variety struct {
	LengthValid  bool
	HasUppercase bool
	HasLowercase bool
	HasNumber    bool
	HasSpecial   bool
}

// CheckVariety checks the length and character classes of the password. Length is counted
// in bytes.
func CheckVariety(password string) Variety {
	v := Variety{LengthValid: len(password) >= MinLength}

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			v.HasUppercase = true
		case unicode.IsLower(r):
			v.HasLowercase = true
		case unicode.IsNumber(r):
			v.HasNumber = true
		case strings.ContainsRune(Specials, r):
			v.HasSpecial = true
		}
	}

	return v
}

// met counts the criteria that hold, not having a common pattern being one of them.
func (v Variety) met(hasCommonPattern bool) int {
	n := 0
	for _, ok := range []bool{v.LengthValid, v.HasUppercase, v.HasLowercase, v.HasNumber, v.HasSpecial, !hasCommonPattern} {
		if ok {
			n++
		}
	}
	return n
}

// DetectCommonPatterns reports well known passwords, runs of three identical characters,
// keyboard walks and words from the optional word list.
func DetectCommonPatterns(password string, words *WordList) bool {
	lower := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lower, common) {
			return true
		}
	}

	count := 1
	for i := 1; i < len(password); i++ {
		if password[i] == password[i-1] {
			count++
			if count >= 3 {
				return true
			}
		} else {
			count = 1
		}
	}

	if keyboardPattern.MatchString(lower) {
		return true
	}

	return words.Contains(lower)
}
