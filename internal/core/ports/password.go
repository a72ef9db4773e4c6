package ports

// PasswordHasher is the one-way credential hashing capability. Hash is salted
// and non-deterministic: two hashes of the same plaintext differ, but both
// verify through Compare.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}
