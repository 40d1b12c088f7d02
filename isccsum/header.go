package isccsum

// Header nibbles. The main-type, subtype, version and length nibbles are
// specification constants drawn from the ISCC standard's component registry;
// an ISCC-SUM composite code and the two standalone "unit" codes emitted
// under --units each carry a different main type.
const (
	mainTypeISCCSum  = 0b0101
	mainTypeData     = 0b0011
	mainTypeInstance = 0b0100

	subtypeNarrow = 0b0101
	subtypeWide   = 0b0111
	subtypeNone   = 0b0000

	version = 0b0000

	lengthSumHeader = 0b0000 // width is carried by subtype instead
	length256       = 0b0111 // standalone units are always full 256-bit width
)

// packHeader returns the 2-byte header for an ISCC-SUM composite code.
func packHeader(wide bool) [2]byte {
	subtype := subtypeNarrow
	if wide {
		subtype = subtypeWide
	}
	return [2]byte{
		byte(mainTypeISCCSum<<4) | byte(subtype),
		byte(version<<4) | byte(lengthSumHeader),
	}
}

// packUnitHeader returns the 2-byte header for a standalone Data-Code or
// Instance-Code unit, always at full 256-bit width.
func packUnitHeader(mainType byte) [2]byte {
	return [2]byte{
		byte(mainType<<4) | byte(subtypeNone),
		byte(version<<4) | byte(length256),
	}
}
