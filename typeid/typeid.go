package typeid

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// ID is the numeric identity of a type. It carries both sequential and hashed
// identifiers. Zero is what an unbound type handle reports.
type ID uint64

// Hasher turns a canonical type name into a fingerprint.
// Implementations must be pure: equal input always gives equal output.
type Hasher func(name []byte) ID

// FNV hashes with 64-bit FNV-1a.
func FNV(name []byte) ID {
	h := fnv.New64a()
	_, _ = h.Write(name)
	return ID(h.Sum64())
}

// XXHash hashes with xxHash64.
func XXHash(name []byte) ID {
	return ID(xxhash.Sum64(name))
}

// Hash returns the FNV fingerprint of a canonical name.
func Hash(name string) ID {
	return FNV([]byte(name))
}
