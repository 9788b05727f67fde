// Package service declares the capabilities the marketplace use cases need
// from the outside world: hashing, tokens, OTP codes, push, caching and
// text cleanup.
package service

// PasswordHasher hashes account passwords. OTP reset codes are compared as
// stored and never go through it.
type PasswordHasher interface {
	// Hash returns the stored form of a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches a stored hash.
	Check(password, hash string) bool
}
