package cli

import (
	"context"
	"io"
	"os"

	"github.com/iscc/isccsum/internal/dcontext"
	"github.com/iscc/isccsum/isccsum"
)

// readChunk is the recommended filesystem read granularity (§5): a
// performance knob, not a correctness boundary.
const readChunk = 2 << 20

// sumItem runs an ISCC-SUM processor over every file in it, in order, and
// returns the finalized result. A stdin item reads from r.
func sumItem(ctx context.Context, it item, r io.Reader, narrow bool, units bool) (isccsum.Result, error) {
	p := isccsum.New()
	buf := make([]byte, readChunk)

	feed := func(src io.Reader) error {
		for {
			n, err := src.Read(buf)
			if n > 0 {
				p.Update(buf[:n])
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}

	if it.stdin {
		if err := feed(r); err != nil {
			return isccsum.Result{}, ioError("-: %v", err)
		}
		return p.Result(!narrow, units), nil
	}

	for _, path := range it.files {
		f, err := os.Open(path)
		if err != nil {
			dcontext.GetLogger(ctx).Warnf("isccsum: skipping %s: %v", path, err)
			return isccsum.Result{}, ioError("%s: %v", path, err)
		}
		err = feed(f)
		f.Close()
		if err != nil {
			return isccsum.Result{}, ioError("%s: %v", path, err)
		}
	}

	return p.Result(!narrow, units), nil
}
