package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the given plaintext password with bcrypt.
//
// bcrypt embeds a per-hash random salt and is deliberately slow, which is
// what makes it suitable for credential storage. cost controls the work
// factor; pass 0 to use bcrypt.DefaultCost.
//
// Parameters:
//
//	password - plaintext password to hash
//	cost     - bcrypt cost factor, 0 for the library default
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if the password is empty or hashing fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret", 0)
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the given
// bcrypt hash.
//
// The comparison is performed by bcrypt itself and is safe against timing
// attacks. Any failure — mismatched password, malformed or truncated hash —
// yields false; the function never panics on user-supplied input.
//
// Example usage:
//
//	if !utils.CheckPassword(candidate, user.PasswordHash) {
//	    // reject login
//	}
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
