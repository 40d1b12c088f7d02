package isccsum

import (
	"encoding/base32"
	"fmt"
	"strings"
)

// Decoded is a parsed ISCC-SUM composite code.
type Decoded struct {
	Wide     bool
	DataBody []byte // 8 or 16 bytes
	InstBody []byte // 8 or 16 bytes
}

// Decode parses an "ISCC:..." composite code string back into its header
// width and component bodies.
func Decode(iscc string) (Decoded, error) {
	s := strings.TrimPrefix(iscc, "ISCC:")
	packed, err := base32Encoding.DecodeString(s)
	if err != nil {
		return Decoded{}, fmt.Errorf("isccsum: invalid base32 in %q: %w", iscc, err)
	}
	if len(packed) < 2 {
		return Decoded{}, fmt.Errorf("isccsum: code %q too short", iscc)
	}

	subtype := packed[0] & 0x0F
	var wide bool
	switch subtype {
	case subtypeNarrow:
		wide = false
	case subtypeWide:
		wide = true
	default:
		return Decoded{}, fmt.Errorf("isccsum: unrecognized subtype in %q", iscc)
	}

	body := packed[2:]
	half := len(body) / 2
	wantHalf := 8
	if wide {
		wantHalf = 16
	}
	if half != wantHalf {
		return Decoded{}, fmt.Errorf("isccsum: code %q has wrong body length", iscc)
	}

	return Decoded{Wide: wide, DataBody: body[:half], InstBody: body[half:]}, nil
}
