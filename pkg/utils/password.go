package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used when the accounts were first
// created; lowering it would silently weaken new hashes.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether password matches hash. An empty or
// malformed hash (google-only accounts have none) always fails the check
// rather than erroring, so callers cannot distinguish those accounts.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
