package instancecode

import (
	"testing"

	"lukechampine.com/blake3"
)

func TestMatchesBlake3Reference(t *testing.T) {
	data := []byte("hello world")

	p := New()
	p.Update(data)

	want := blake3.Sum256(data)
	got := p.Wide()
	if got != want {
		t.Fatalf("wide digest = %x, want %x", got, want)
	}

	var wantNarrow [8]byte
	copy(wantNarrow[:], want[:8])
	if p.Narrow() != wantNarrow {
		t.Fatalf("narrow digest mismatch")
	}
}

func TestUpdateSlicingIndependence(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	whole := New()
	whole.Update(data)

	split := New()
	split.Update(data[:10])
	split.Update(data[10:20])
	split.Update(data[20:])

	if whole.Wide() != split.Wide() {
		t.Fatalf("digest depends on update slicing")
	}
	if whole.Size() != split.Size() {
		t.Fatalf("size depends on update slicing: %d != %d", whole.Size(), split.Size())
	}
}

func TestSize(t *testing.T) {
	p := New()
	p.Update([]byte("abc"))
	p.Update([]byte("defgh"))
	if p.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", p.Size())
	}
}

func TestHexMatchesWide(t *testing.T) {
	p := New()
	p.Update([]byte("abc"))
	wide := p.Wide()
	if p.Hex() != hexString(wide[:]) {
		t.Fatalf("Hex() does not match Wide()")
	}
}

func hexString(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0xF]
	}
	return string(out)
}
