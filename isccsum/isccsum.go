// Package isccsum implements the single-entry façade that fans a byte stream
// out to the Data-Code and Instance-Code processors, then packs their digests
// into a header-prefixed ISCC-SUM and renders it in the "ISCC:" text form.
//
// Its shape — one Update call feeding a fixed set of sub-digesters, a Result
// method producing a result record — follows the same streaming-digester
// pattern this codebase has used since its checksum-registry ancestry: wrap
// hash.Hash-like state, expose incremental Write, finalize once.
package isccsum

import (
	"encoding/base32"

	"github.com/iscc/isccsum/datacode"
	"github.com/iscc/isccsum/instancecode"
)

// Result is the record produced by a finalized Processor.
type Result struct {
	ISCC     string   // "ISCC:" + base32(header || data_body || instance_body)
	Datahash string   // hex-encoded full 32-byte BLAKE3 digest
	Filesize int64    // total bytes processed
	Units    []string // present only when units were requested: [data, instance]
}

// Processor is the ISCC-SUM façade: update it with consecutive slices of a
// byte stream, then call Result once the stream is exhausted.
type Processor struct {
	data     *datacode.Processor
	instance *instancecode.Processor
}

// New returns an empty Processor.
func New() *Processor {
	return &Processor{
		data:     datacode.New(),
		instance: instancecode.New(),
	}
}

// Update fans data out to the Data-Code and Instance-Code processors. It may
// be called any number of times with any slicing of the overall stream.
func (p *Processor) Update(data []byte) {
	p.data.Update(data)
	p.instance.Update(data)
}

// Result finalizes both processors and renders the composite code. wide
// selects the 256-bit (16+16-byte) body over the 128-bit (8+8-byte) narrow
// body; addUnits additionally renders the two full-width (32-byte)
// standalone component codes.
func (p *Processor) Result(wide bool, addUnits bool) Result {
	p.data.Finalize()

	header := packHeader(wide)
	var body []byte
	if wide {
		dataBody := p.data.Wide()
		instBody := p.instance.Wide()
		body = append(body, dataBody[:16]...)
		body = append(body, instBody[:16]...)
	} else {
		dataBody := p.data.Narrow()
		instBody := p.instance.Narrow()
		body = append(body, u64Bytes(dataBody)...)
		body = append(body, instBody[:]...)
	}

	packed := append(append([]byte{}, header[:]...), body...)

	res := Result{
		ISCC:     render(packed),
		Datahash: p.instance.Hex(),
		Filesize: p.instance.Size(),
	}

	if addUnits {
		dataWide := p.data.Wide()
		instWide := p.instance.Wide()

		dataPacked := append(packUnitHeader(mainTypeData)[:], dataWide[:]...)
		instPacked := append(packUnitHeader(mainTypeInstance)[:], instWide[:]...)

		res.Units = []string{render(dataPacked), render(instPacked)}
	}

	return res
}

// u64Bytes renders a 64-bit digest big-endian, matching the byte order the
// header and 256-bit bodies use.
func u64Bytes(v uint64) []byte {
	out := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

var base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// render encodes packed bytes as "ISCC:" followed by unpadded, upper-case
// RFC 4648 base32 — the standard's textual form for a component code.
func render(packed []byte) string {
	return "ISCC:" + base32Encoding.EncodeToString(packed)
}
