// Package hash provides the checksum used to validate model file payloads.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 digest of the given payload bytes.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
