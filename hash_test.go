package flathash

import "testing"

func TestHashIdentityWidths(t *testing.T) {
	if got := HashInt8(-1); got != 0xFF {
		t.Fatalf("HashInt8(-1) = %#x, want 0xff", got)
	}
	if got := HashInt16(-1); got != 0xFFFF {
		t.Fatalf("HashInt16(-1) = %#x, want 0xffff", got)
	}
	if got := HashUint32(0xDEADBEEF); got != 0xDEADBEEF {
		t.Fatalf("HashUint32 mismatch: %#x", got)
	}
	if got := HashIdentity(int32(-1)); got != 0xFFFFFFFF {
		t.Fatalf("HashIdentity(int32(-1)) = %#x, want 0xffffffff", got)
	}
	if got := HashIdentity(uint64(42)); got != 42 {
		t.Fatalf("HashIdentity(uint64(42)) = %d, want 42", got)
	}
}

func TestHashFloat(t *testing.T) {
	if HashFloat64(0) == HashFloat64(1) {
		t.Fatal("distinct floats hashed identically")
	}
	// determinism
	if HashFloat64(3.25) != HashFloat64(3.25) {
		t.Fatal("HashFloat64 not deterministic")
	}
}

func TestHashBytesDeterministic(t *testing.T) {
	a := HashBytesSeed0([]byte("the quick brown fox"))
	b := HashBytesSeed0([]byte("the quick brown fox"))
	if a != b {
		t.Fatalf("HashBytesSeed0 not deterministic: %#x != %#x", a, b)
	}
}

func TestHashBytesEmpty(t *testing.T) {
	// With no bytes, HashBytes degenerates to mix(seed ^ (0 * m)) == mix(seed).
	got := HashBytesSeed0(nil)
	want := fastHashMix(0)
	if got != want {
		t.Fatalf("HashBytesSeed0(nil) = %#x, want %#x", got, want)
	}
}

func TestHashBytesVariesByContent(t *testing.T) {
	a := HashBytesSeed0([]byte("abcdefgh"))
	b := HashBytesSeed0([]byte("abcdefgi"))
	if a == b {
		t.Fatal("single-byte change produced identical hash")
	}
}

func TestHashBytesAllTailLengths(t *testing.T) {
	base := []byte("0123456789ABCDEF0123456789ABCDE") // 31 bytes, exercise every tail length 0..7
	seen := map[uint64]bool{}
	for n := 0; n <= len(base); n++ {
		h := HashBytesSeed0(base[:n])
		seen[h] = true
	}
	if len(seen) < len(base)-2 {
		t.Fatalf("suspiciously few distinct hashes across tail lengths: %d", len(seen))
	}
}

func TestHashStringMatchesHashBytes(t *testing.T) {
	s := "flathash is a flat robin hood table"
	if HashStringSeed0(s) != HashBytesSeed0([]byte(s)) {
		t.Fatal("HashStringSeed0 diverges from HashBytesSeed0 on the same content")
	}
}
