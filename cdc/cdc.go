// Package cdc implements the gear-hash rolling boundary detector used by the
// Data-Code pipeline. It produces a chunk boundary stream that depends only on
// the bytes fed through Splitter, independent of how the caller slices the
// stream before feeding it byte by byte to Roll.
package cdc

import "github.com/iscc/isccsum/gear"

// Size parameters and masks are specification constants: every implementation
// of this system must use the same values, or chunk boundaries (and therefore
// Data-Codes) will not agree across implementations.
const (
	MinSize = 2048  // bytes; boundaries are suppressed below this length
	AvgSize = 8192  // bytes; target average chunk length
	MaxSize = 32768 // bytes; boundaries are forced at this length

	// maskSmall is applied while the current chunk is shorter than AvgSize.
	// It has more bits set than maskLarge, making a boundary less probable
	// and discouraging very short chunks.
	maskSmall uint64 = 0x202808408225c304

	// maskLarge is applied once the current chunk has reached AvgSize. It has
	// fewer bits set, making a boundary more probable and pulling the chunk
	// length back down toward AvgSize.
	maskLarge uint64 = 0xc800107200010041
)

// Splitter evaluates the rolling gear hash over a byte stream and reports
// chunk boundaries. It holds O(1) state: the rolling hash and a counter of
// bytes since the last boundary. It never retains the bytes it has seen.
type Splitter struct {
	h uint64
	n int
}

// NewSplitter returns a Splitter ready to scan from the start of a stream.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Roll folds one more byte into the rolling hash and reports whether this
// byte ends the current chunk. Call order must match the order bytes appear
// in the stream; Roll has no other way to observe position.
func (s *Splitter) Roll(b byte) bool {
	s.h = (s.h << 1) + gear.Table[b]
	s.n++

	mask := maskLarge
	if s.n < AvgSize {
		mask = maskSmall
	}

	if s.n >= MinSize && (s.h&mask == 0 || s.n == MaxSize) {
		s.n = 0
		return true
	}
	return false
}

// ForceBoundary resets the splitter's length counter, as happens at the true
// end of a stream where the final, possibly-short chunk is cut unconditionally.
func (s *Splitter) ForceBoundary() {
	s.n = 0
}
