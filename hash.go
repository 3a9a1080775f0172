package flathash

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Hasher maps a key to a machine word. Implementations must be pure,
// stateless, copyable, and allocation-free.
type Hasher[K any] func(key K) uint64

// Fasthash constants, bit-exact with the reference block mixer:
// fastHashMul is the per-block multiplier, fastHashMixMul and
// fastHashShift{Lo,Hi} drive the avalanche step.
const (
	fastHashMul     = 0x880355F21E6D1965
	fastHashMixMul  = 0x2127599BF4325C37
	fastHashShiftLo = 23
	fastHashShiftHi = 47
)

func fastHashMix(h uint64) uint64 {
	h ^= h >> fastHashShiftLo
	h *= fastHashMixMul
	h ^= h >> fastHashShiftHi
	return h
}

// HashBytes is the block-mixer byte hash from the reference design: an
// 8-byte-block running multiply-and-mix accumulator with a byte-shifted
// tail, finished with one more mix pass. It is deterministic, depends
// only on the input bytes and seed, and never allocates.
func HashBytes(seed uint64, b []byte) uint64 {
	h := seed ^ (uint64(len(b)) * fastHashMul)

	n := len(b) &^ 7
	for i := 0; i < n; i += 8 {
		block := le64(b[i : i+8])
		h ^= fastHashMix(block)
		h *= fastHashMul
	}

	tail := b[n:]
	if len(tail) > 0 {
		var v uint64
		for i := len(tail) - 1; i >= 0; i-- {
			v = (v << 8) | uint64(tail[i])
		}
		h ^= fastHashMix(v)
		h *= fastHashMul
	}

	return fastHashMix(h)
}

// HashString is HashBytes over a string's bytes without a copy.
func HashString(seed uint64, s string) uint64 {
	return HashBytes(seed, unsafe.Slice(unsafe.StringData(s), len(s)))
}

func le64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// HashBytesSeed0 / HashStringSeed0 are the default Hasher[K]-shaped entry
// points: the container's default construction for byte-sequence keys
// always seeds with 0, matching the bit-exact contract of the reference
// design.
func HashBytesSeed0(b []byte) uint64  { return HashBytes(0, b) }
func HashStringSeed0(s string) uint64 { return HashString(0, s) }

// Per-width near-identity hashes for small scalar keys: reinterpret the
// key's bits as an unsigned integer of the same width, then zero-extend.
func HashUint8(k uint8) uint64   { return uint64(k) }
func HashUint16(k uint16) uint64 { return uint64(k) }
func HashUint32(k uint32) uint64 { return uint64(k) }
func HashUint64(k uint64) uint64 { return k }
func HashInt8(k int8) uint64     { return uint64(uint8(k)) }
func HashInt16(k int16) uint64   { return uint64(uint16(k)) }
func HashInt32(k int32) uint64   { return uint64(uint32(k)) }
func HashInt64(k int64) uint64   { return uint64(k) }
func HashFloat32(k float32) uint64 { return uint64(math.Float32bits(k)) }
func HashFloat64(k float64) uint64 { return math.Float64bits(k) }

// HashPointer returns the raw address of p, zero-extended to a machine
// word. Not required to match across processes.
func HashPointer[T any](p *T) uint64 {
	return uint64(uintptr(unsafe.Pointer(p)))
}

// HashIdentity dispatches to the width-appropriate near-identity hash for
// any built-in integer or floating-point key type, saving callers from
// picking HashInt32 vs HashUint64 vs HashFloat64 by hand.
func HashIdentity[K constraints.Integer | constraints.Float](key K) uint64 {
	switch k := any(key).(type) {
	case int:
		return HashInt64(int64(k))
	case int8:
		return HashInt8(k)
	case int16:
		return HashInt16(k)
	case int32:
		return HashInt32(k)
	case int64:
		return HashInt64(k)
	case uint:
		return HashUint64(uint64(k))
	case uint8:
		return HashUint8(k)
	case uint16:
		return HashUint16(k)
	case uint32:
		return HashUint32(k)
	case uint64:
		return HashUint64(k)
	case uintptr:
		return HashUint64(uint64(k))
	case float32:
		return HashFloat32(k)
	case float64:
		return HashFloat64(k)
	default:
		panic("flathash: unsupported key type for HashIdentity")
	}
}
