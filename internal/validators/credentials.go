package validators

import (
	"regexp"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

const MinPasswordLength = 12

func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// IsPasswordStrong wants at least MinPasswordLength characters with a letter,
// a digit and a symbol (anything that is not a word character or space).
func IsPasswordStrong(password string) bool {
	var length int
	var hasLetter, hasDigit, hasSymbol bool

	for _, r := range password {
		length++
		switch {
		case r == '\n':
			// "." in the original rule never matched a newline
			return false
		case isASCIILetter(r):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
		default:
			hasSymbol = true
		}
	}

	return length >= MinPasswordLength && hasLetter && hasDigit && hasSymbol
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
