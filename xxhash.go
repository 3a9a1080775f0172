package flathash

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// HashBytesXXH64 and HashStringXXH64 are alternate byte-sequence hashers
// backed by xxhash. They are faster than HashBytes on long inputs but are
// NOT bit-exact with the reference design's fasthash mixer — pass them
// as the hash argument of NewSet/NewMap only when bit-exact
// compatibility does not matter. The convenience constructors
// NewStringSet/NewStringMap always use HashStringSeed0 instead.
func HashBytesXXH64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

func HashStringXXH64(s string) uint64 {
	return xxhash.Sum64(unsafe.Slice(unsafe.StringData(s), len(s)))
}
