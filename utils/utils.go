package utils

import (
	"regexp"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost matches the cost of the hashes already stored for the demo accounts
const PasswordCost = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail accepts anything shaped local@domain.tld without whitespace
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword returns nil only when password matches hash
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var unknownUserHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("unknown-user"), PasswordCost)
	return hash
})

// CompareUnknownUser spends one bcrypt comparison on a throwaway hash, so a
// login for a missing username costs the same as a wrong password.
func CompareUnknownUser(password string) {
	_ = bcrypt.CompareHashAndPassword(unknownUserHash(), []byte(password))
}
