// Package service declares the ports the usecases depend on: hashing, tokens,
// payments, storage, mail and QR rendering.
package service

// PasswordHasher hashes local account passwords. Google accounts have no hash.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Matches reports whether password produced hash. An empty hash never matches.
	Matches(password, hash string) bool

	// NeedsRehash reports whether hash was produced with weaker settings than the
	// current ones, so it should be replaced after the next successful login.
	NeedsRehash(hash string) bool
}
