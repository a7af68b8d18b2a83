package ports

// PasswordHasher hashes and verifies account passwords.
//
// Implementations must apply the same input normalization at hashing and
// verification time so a password always verifies against its own hash.
type PasswordHasher interface {
	// Hash derives a self-describing hash string from the plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the stored hash.
	Verify(password, hash string) (bool, error)
}
