// Package datacode composes the gear-hash chunk splitter, the chunk feature
// hash, and the MinHash sketch into the similarity-preserving half of an
// ISCC-SUM: the Data-Code.
package datacode

import (
	"github.com/cespare/xxhash/v2"

	"github.com/iscc/isccsum/cdc"
	"github.com/iscc/isccsum/minhash"
)

// Processor streams arbitrary byte slices through content-defined chunking
// and feeds each chunk's feature hash into a MinHash sketch. It must see the
// entire stream before Finalize is called, and produces identical output no
// matter how the input was sliced across Update calls.
type Processor struct {
	splitter *cdc.Splitter
	sketch   *minhash.Sketch
	chunk    *xxhash.Digest
	pending  int // bytes written to chunk since the last feature was folded in
}

// New returns an empty Processor.
func New() *Processor {
	return &Processor{
		splitter: cdc.NewSplitter(),
		sketch:   minhash.New(),
		chunk:    xxhash.New(),
	}
}

// Update folds data into the in-progress chunk stream. It may be called any
// number of times with any slicing of the overall input.
func (p *Processor) Update(data []byte) {
	start := 0
	for i, b := range data {
		if p.splitter.Roll(b) {
			p.chunk.Write(data[start : i+1])
			p.pending += i + 1 - start
			p.feature()
			start = i + 1
		}
	}
	if start < len(data) {
		p.chunk.Write(data[start:])
		p.pending += len(data) - start
	}
}

// feature finalizes the current chunk's xxhash-32 feature (the low 32 bits of
// the underlying 64-bit digest, seed zero) into the sketch and resets the
// per-chunk hasher for the next chunk.
func (p *Processor) feature() {
	f := uint32(p.chunk.Sum64())
	p.sketch.Update(f)
	p.chunk.Reset()
	p.pending = 0
}

// Finalize forces a boundary at the current position (as happens at true
// end-of-stream, where the tail chunk may be shorter than the minimum chunk
// size) and folds it into the sketch.
func (p *Processor) Finalize() {
	if p.pending > 0 {
		p.feature()
	}
	p.splitter.ForceBoundary()
}

// Narrow returns the 64-bit Data-Code digest after Finalize has been called.
func (p *Processor) Narrow() uint64 {
	return p.sketch.Narrow()
}

// Wide returns the 256-bit Data-Code digest after Finalize has been called.
func (p *Processor) Wide() [32]byte {
	return p.sketch.Wide()
}
