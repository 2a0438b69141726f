package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor for password hashing: slow enough to resist
// offline guessing, fast enough for interactive login.
const bcryptCost = 10

// PasswordHasher is the one-way salted hashing primitive used for passwords.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext. Each call uses a fresh
	// random salt, so hashing the same password twice yields different strings.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the hash. A mismatch is
	// (false, nil); an error is only returned for a hash that cannot be parsed.
	Verify(password, hash string) (bool, error)
}

// BcryptHasher implements PasswordHasher using bcrypt. The produced hash is
// self-describing: algorithm, cost and salt are embedded in the string, so
// verification needs no external parameters.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the standard cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

// Hash derives a salted bcrypt hash from the plaintext.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares the plaintext against the stored hash in constant time.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, err
}
