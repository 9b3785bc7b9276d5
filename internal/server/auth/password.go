package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor for password hashing. 12 keeps hashing
// slow enough to resist brute force while staying usable per request.
const bcryptCost = 12

// HashPassword returns the salted bcrypt hash of password. Each call produces
// a different hash for the same input.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether password corresponds to hash. A mismatch is
// a normal false result, not an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
