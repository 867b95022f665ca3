package ports

// PasswordHasher is the one-way credential transform. Hash salts per call, so
// two hashes of the same password differ yet both verify. Verify returns
// (false, nil) on a mismatch; an error is returned only when the stored hash
// is malformed (wrapping domain.ErrCorruptCredential).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}
