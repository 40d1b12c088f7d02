package cdc

import (
	"bytes"
	"math/rand"
	"testing"
)

func splitAll(data []byte) []int {
	s := NewSplitter()
	var lengths []int
	last := 0
	for i, b := range data {
		if s.Roll(b) {
			lengths = append(lengths, i+1-last)
			last = i + 1
		}
	}
	if last < len(data) {
		s.ForceBoundary()
		lengths = append(lengths, len(data)-last)
	}
	return lengths
}

func TestSplitterDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := make([]byte, 4*AvgSize)
	r.Read(data)

	a := splitAll(data)
	b := splitAll(data)

	if len(a) != len(b) {
		t.Fatalf("chunk counts differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("chunk %d length differs: %d != %d", i, a[i], b[i])
		}
	}
}

func TestSplitterBoundsRespected(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	data := make([]byte, 8*AvgSize)
	r.Read(data)

	lengths := splitAll(data)
	sum := 0
	for i, l := range lengths {
		sum += l
		if l > MaxSize {
			t.Fatalf("chunk %d exceeds MaxSize: %d", i, l)
		}
		// every chunk but the final (forced) one must reach MinSize
		if i != len(lengths)-1 && l < MinSize {
			t.Fatalf("non-final chunk %d is shorter than MinSize: %d", i, l)
		}
	}
	if sum != len(data) {
		t.Fatalf("chunk lengths sum to %d, want %d", sum, len(data))
	}
}

func TestSplitterIndependentOfFeedSlicing(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	data := make([]byte, 4*AvgSize)
	r.Read(data)

	whole := splitAll(data)

	// feed in small, uneven slices and confirm the same boundary offsets
	s := NewSplitter()
	var lengths []int
	last := 0
	pos := 0
	for pos < len(data) {
		step := 1 + (pos % 7)
		end := pos + step
		if end > len(data) {
			end = len(data)
		}
		for i := pos; i < end; i++ {
			if s.Roll(data[i]) {
				lengths = append(lengths, i+1-last)
				last = i + 1
			}
		}
		pos = end
	}
	if last < len(data) {
		s.ForceBoundary()
		lengths = append(lengths, len(data)-last)
	}

	if len(lengths) != len(whole) {
		t.Fatalf("sliced feed produced %d chunks, unsliced produced %d", len(lengths), len(whole))
	}
	for i := range whole {
		if whole[i] != lengths[i] {
			t.Fatalf("chunk %d differs under different slicing: %d != %d", i, whole[i], lengths[i])
		}
	}
}

func TestSplitterTailForcedAtEndOfStream(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, MinSize/2)
	lengths := splitAll(data)
	if len(lengths) != 1 || lengths[0] != len(data) {
		t.Fatalf("expected one forced tail chunk of %d bytes, got %v", len(data), lengths)
	}
}
