package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an admin's password with bcrypt at the given
// cost.  The cost comes from BCRYPT_COST so production can run a
// higher factor than local development.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// The comparison is constant-time; a false return covers both a wrong
// password and a malformed hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
