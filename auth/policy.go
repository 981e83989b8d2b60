package auth

import (
	"bytes"
	"errors"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLen = 12
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~`"
)

// CheckPolicy reports the first password rule pw does not satisfy.
// It works on the raw bytes so no immutable string copy of the password is made.
func CheckPolicy(pw []byte) error {
	if utf8.RuneCount(pw) < minPasswordLen {
		return errors.New("password should be at least 12 characters long")
	}
	if !hasRune(pw, unicode.IsUpper) {
		return errors.New("password should include an uppercase letter")
	}
	if !hasRune(pw, unicode.IsDigit) {
		return errors.New("password should include a digit")
	}
	if !hasRune(pw, isSpecial) {
		return errors.New("password should include a special character")
	}
	return nil
}

func hasRune(b []byte, match func(rune) bool) bool {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if match(r) {
			return true
		}
		b = b[size:]
	}
	return false
}

func isSpecial(r rune) bool {
	return r < utf8.RuneSelf && bytes.IndexByte([]byte(specialChars), byte(r)) >= 0
}
