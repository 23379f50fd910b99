package ports

// PasswordHasher performs one-way salted hashing of passwords. Verify is the
// only supported comparison; hashes must never be compared for equality.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
