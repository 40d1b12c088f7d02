// Package checksumfile renders and parses the two textual line forms this
// tool's checksum files use: the default "<ISCC> *<path>" form and the
// BSD-style "ISCC (<path>) = <ISCC>" form, auto-detected per line on parse.
package checksumfile

import (
	"fmt"
	"io"
	"strings"
)

// Line is one generated or parsed checksum-file record.
type Line struct {
	ISCC   string
	Path   string
	IsTree bool // path ends in "/"
}

// Terminator returns "\x00" when zero is set, "\n" otherwise.
func Terminator(zero bool) string {
	if zero {
		return "\x00"
	}
	return "\n"
}

// displayPath returns l.Path with a trailing "/" if and only if l is a tree
// mode line.
func (l Line) displayPath() string {
	if l.IsTree && !strings.HasSuffix(l.Path, "/") {
		return l.Path + "/"
	}
	return l.Path
}

// WriteDefault writes "<ISCC> *<path>" followed by the chosen terminator.
func WriteDefault(w io.Writer, l Line, zero bool) error {
	_, err := fmt.Fprintf(w, "%s *%s%s", l.ISCC, l.displayPath(), Terminator(zero))
	return err
}

// WriteBSD writes "ISCC (<path>) = <ISCC>" followed by the chosen terminator.
func WriteBSD(w io.Writer, l Line, zero bool) error {
	_, err := fmt.Fprintf(w, "ISCC (%s) = %s%s", l.displayPath(), l.ISCC, Terminator(zero))
	return err
}

// WriteIndented writes a two-space-indented continuation line (used for
// --units output and similarity group members), ending in the chosen
// terminator.
func WriteIndented(w io.Writer, content string, zero bool) error {
	_, err := fmt.Fprintf(w, "  %s%s", content, Terminator(zero))
	return err
}

// Parse auto-detects and parses one non-empty, non-comment checksum-file
// line. It returns ok=false for anything it cannot recognize.
func Parse(line string) (Line, bool) {
	line = strings.TrimRight(line, "\r\n\x00")
	if line == "" {
		return Line{}, false
	}

	if strings.HasPrefix(line, "ISCC (") {
		return parseBSD(line)
	}
	return parseDefault(line)
}

func parseBSD(line string) (Line, bool) {
	rest := strings.TrimPrefix(line, "ISCC (")
	closeIdx := strings.LastIndex(rest, ") = ")
	if closeIdx < 0 {
		return Line{}, false
	}
	path := rest[:closeIdx]
	iscc := rest[closeIdx+len(") = "):]
	if path == "" || iscc == "" {
		return Line{}, false
	}
	return Line{ISCC: iscc, Path: strings.TrimSuffix(path, "/"), IsTree: strings.HasSuffix(path, "/")}, true
}

func parseDefault(line string) (Line, bool) {
	spaceIdx := strings.IndexByte(line, ' ')
	if spaceIdx < 0 {
		return Line{}, false
	}
	iscc := line[:spaceIdx]
	rest := line[spaceIdx+1:]
	rest = strings.TrimPrefix(rest, "*")
	if iscc == "" || rest == "" {
		return Line{}, false
	}
	return Line{ISCC: iscc, Path: strings.TrimSuffix(rest, "/"), IsTree: strings.HasSuffix(rest, "/")}, true
}
