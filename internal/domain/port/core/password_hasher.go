package core

// PasswordHasher abstracts credential hashing so that the domain never sees
// plaintext credentials beyond the registration boundary
type PasswordHasher interface {
	// Hash derives a one-way hash from the given credential
	Hash(credential string) (string, error)
	// Compare reports whether the credential matches the stored hash
	Compare(hash, credential string) bool
}
