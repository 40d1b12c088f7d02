// Package instancecode implements the exact-integrity half of an ISCC-SUM:
// a streaming BLAKE3 digest plus a running byte count. Its streaming shape
// mirrors a classic checksum-tool digester — a hash.Hash wrapped so callers
// can both feed bytes incrementally and read back a digest at any width.
package instancecode

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Processor wraps a streaming BLAKE3 hasher and a running byte counter. It
// must be fed the entire stream; reading a digest (Narrow, Wide, Hex) does
// not disturb further Update calls.
type Processor struct {
	hasher *blake3.Hasher
	size   int64
}

// New returns an empty Processor.
func New() *Processor {
	return &Processor{hasher: blake3.New(32, nil)}
}

// Update folds data into the digest and byte count.
func (p *Processor) Update(data []byte) {
	p.hasher.Write(data)
	p.size += int64(len(data))
}

// Size returns the total number of bytes seen so far.
func (p *Processor) Size() int64 {
	return p.size
}

// full returns the complete 32-byte BLAKE3 digest of everything written so
// far, without disturbing further Update calls.
func (p *Processor) full() [32]byte {
	var out [32]byte
	sum := p.hasher.Sum(nil)
	copy(out[:], sum)
	return out
}

// Narrow returns the first 8 bytes of the BLAKE3 digest.
func (p *Processor) Narrow() [8]byte {
	var out [8]byte
	full := p.full()
	copy(out[:], full[:8])
	return out
}

// Wide returns the first 32 bytes of the BLAKE3 digest (the whole digest).
func (p *Processor) Wide() [32]byte {
	return p.full()
}

// Hex returns the full 32-byte BLAKE3 digest, hex-encoded, for use as the
// datahash field of a result record.
func (p *Processor) Hex() string {
	full := p.full()
	return hex.EncodeToString(full[:])
}
