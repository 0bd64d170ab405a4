// Package application contains the use cases: one struct per operation,
// orchestrating validation, authorization and persistence through the
// domain interfaces. Everything stateful is injected.
package application

// PasswordHasher hashes plaintext passwords and verifies them against a
// stored hash. The bcrypt implementation lives in pkg/helpers.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// IDGenerator produces opaque string identifiers for new entities.
type IDGenerator interface {
	Generate() string
}
