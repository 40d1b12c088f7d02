package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/iscc/isccsum/checksumfile"
	"github.com/iscc/isccsum/isccsum"
	"github.com/iscc/isccsum/similarity"
)

// runSimilar implements §4.10: compute every input's ISCC-SUM, decode its
// Data-Code body, and greedily cluster by Hamming distance.
func runSimilar(ctx context.Context, o *Options, stdout, stderr io.Writer) error {
	items, err := expand(o.Paths, false)
	if err != nil {
		return err
	}
	if len(items) < 2 {
		return usageError("--similar requires at least two inputs")
	}

	out, closeOut, err := openOutput(o, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	var files []similarity.File
	for _, it := range items {
		res, err := sumItem(ctx, it, nil, o.Narrow, false)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		dec, err := isccsum.Decode(res.ISCC)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		files = append(files, similarity.File{Path: it.display, ISCC: res.ISCC, DataBody: dec.DataBody})
	}

	groups := similarity.Cluster(files, o.Threshold)
	for i, g := range groups {
		if i > 0 {
			if _, err := io.WriteString(out, checksumfile.Terminator(o.Zero)); err != nil {
				return ioError("write output: %v", err)
			}
		}
		line := checksumfile.Line{ISCC: g.Ref.ISCC, Path: g.Ref.Path}
		if err := writeRefLine(out, line, o); err != nil {
			return ioError("write output: %v", err)
		}
		for _, m := range g.Members {
			content := fmt.Sprintf("~%d %s *%s", m.Distance, m.File.ISCC, m.File.Path)
			if err := checksumfile.WriteIndented(out, content, o.Zero); err != nil {
				return ioError("write output: %v", err)
			}
		}
	}
	return nil
}

func writeRefLine(w io.Writer, l checksumfile.Line, o *Options) error {
	if o.Tag {
		return checksumfile.WriteBSD(w, l, o.Zero)
	}
	return checksumfile.WriteDefault(w, l, o.Zero)
}
