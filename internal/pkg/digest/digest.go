// Package digest compares purchase email digests without leaking timing
// information. Ordinary string equality short-circuits on the first
// differing byte, which would let a caller probe a digest prefix by
// measuring response times.
package digest

import (
	"crypto/sha256"
	"crypto/subtle"
)

// SecureCompare reports whether the two digests are equal in time
// independent of where (or whether) they differ. Both inputs are hashed
// first so that inputs of different lengths still take the same time to
// compare.
func SecureCompare(stored, supplied string) bool {
	storedSum := sha256.Sum256([]byte(stored))
	suppliedSum := sha256.Sum256([]byte(supplied))
	return subtle.ConstantTimeCompare(storedSum[:], suppliedSum[:]) == 1
}
