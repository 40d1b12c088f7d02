package cli

import (
	"io"
	"os"

	"github.com/iscc/isccsum/checksumfile"
	"github.com/iscc/isccsum/isccsum"
)

// writeLine renders one main output line for path/result in the selected
// format, followed by its --units continuation lines if requested.
func writeLine(w io.Writer, path string, isTree bool, res isccsum.Result, o *Options) error {
	line := checksumfile.Line{ISCC: res.ISCC, Path: path, IsTree: isTree}

	var err error
	if o.Tag {
		err = checksumfile.WriteBSD(w, line, o.Zero)
	} else {
		err = checksumfile.WriteDefault(w, line, o.Zero)
	}
	if err != nil {
		return err
	}

	for _, u := range res.Units {
		if err := checksumfile.WriteIndented(w, u, o.Zero); err != nil {
			return err
		}
	}
	return nil
}

// openOutput returns the writer output should go to, plus a closer. It
// defaults to stdout.
func openOutput(o *Options, stdout io.Writer) (io.Writer, func() error, error) {
	if o.Output == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(o.Output)
	if err != nil {
		return nil, nil, ioError("%s: %v", o.Output, err)
	}
	return f, f.Close, nil
}
