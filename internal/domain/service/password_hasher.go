package service

// PasswordHasher hashes and verifies passwords. Implementations must use a
// slow, salted hash.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext matches the stored hash.
	Compare(hashedPassword, password string) error
}
