package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the admin password with bcrypt at the given cost.
// Only the hash is ever written into the credential record; the cost comes
// from configuration so tests can use bcrypt.MinCost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored credential hash.
// Any bcrypt error, including a malformed hash, counts as a mismatch.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
