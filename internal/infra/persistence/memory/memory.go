// Package memory contains the concrete implementation of the store layer as
// mutex-guarded in-memory collections. Every store serializes its mutations
// behind its own lock, and all reads hand out copies so callers can never
// alias internal state. The contract is synchronous and read-your-writes;
// nothing is cached, batched or deferred.
package memory

import "strings"

// normalizeEmail lower-cases an email for use as a store key. Stored
// entities keep the casing supplied by the caller; only lookups normalize.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
