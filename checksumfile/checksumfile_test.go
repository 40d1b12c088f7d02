package checksumfile

import (
	"bytes"
	"testing"
)

func TestWriteDefaultAndParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	line := Line{ISCC: "ISCC:KACT4EBWK27TE", Path: "a.txt"}
	if err := WriteDefault(&buf, line, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	want := "ISCC:KACT4EBWK27TE *a.txt\n"
	if buf.String() != want {
		t.Fatalf("WriteDefault output = %q, want %q", buf.String(), want)
	}

	got, ok := Parse(buf.String())
	if !ok {
		t.Fatalf("Parse failed on %q", buf.String())
	}
	if got != line {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, line)
	}
}

func TestWriteBSDAndParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	line := Line{ISCC: "ISCC:KACT4EBWK27TE", Path: "dir/b.txt"}
	if err := WriteBSD(&buf, line, false); err != nil {
		t.Fatalf("WriteBSD: %v", err)
	}

	want := "ISCC (dir/b.txt) = ISCC:KACT4EBWK27TE\n"
	if buf.String() != want {
		t.Fatalf("WriteBSD output = %q, want %q", buf.String(), want)
	}

	got, ok := Parse(buf.String())
	if !ok {
		t.Fatalf("Parse failed on %q", buf.String())
	}
	if got != line {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, line)
	}
}

func TestTreeModeTrailingSlash(t *testing.T) {
	line := Line{ISCC: "ISCC:KACT4EBWK27TE", Path: "mydir", IsTree: true}

	var buf bytes.Buffer
	WriteDefault(&buf, line, false)
	want := "ISCC:KACT4EBWK27TE *mydir/\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}

	got, ok := Parse(buf.String())
	if !ok || !got.IsTree || got.Path != "mydir" {
		t.Fatalf("tree-mode parse mismatch: %+v ok=%v", got, ok)
	}
}

func TestZeroTerminator(t *testing.T) {
	var buf bytes.Buffer
	WriteDefault(&buf, Line{ISCC: "ISCC:AAAA", Path: "x"}, true)
	if buf.Bytes()[buf.Len()-1] != 0 {
		t.Fatalf("expected NUL terminator, got %q", buf.String())
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "#comment", "justonetoken", "ISCC (unterminated"}
	for _, c := range cases {
		if _, ok := Parse(c); ok {
			t.Errorf("Parse(%q) unexpectedly succeeded", c)
		}
	}
}

func TestParseAutoDetectsFormat(t *testing.T) {
	def, ok := Parse("ISCC:AAAA *f.bin")
	if !ok || def.Path != "f.bin" {
		t.Fatalf("default-form parse failed: %+v ok=%v", def, ok)
	}
	bsd, ok := Parse("ISCC (f.bin) = ISCC:AAAA")
	if !ok || bsd.Path != "f.bin" {
		t.Fatalf("BSD-form parse failed: %+v ok=%v", bsd, ok)
	}
}
