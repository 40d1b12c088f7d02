package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iscc/isccsum/checksumfile"
	"github.com/iscc/isccsum/ignore"
	"github.com/iscc/isccsum/isccsum"
	"github.com/iscc/isccsum/treewalk"
)

// runVerify implements §4.9's verification branch: each PATH argument names a
// checksum list file, not a data file.
func runVerify(ctx context.Context, o *Options, stdout, stderr io.Writer) error {
	if len(o.Paths) == 0 {
		return usageError("--check requires at least one checksum-file argument")
	}

	mismatches := 0

	for _, listPath := range o.Paths {
		n, _, err := verifyList(ctx, listPath, o, stdout, stderr)
		if err != nil {
			return err
		}
		mismatches += n
	}

	if mismatches > 0 {
		if !o.Status && !o.Quiet {
			noun := "checksum"
			if mismatches != 1 {
				noun = "checksums"
			}
			fmt.Fprintf(stdout, "%d computed %s did NOT match\n", mismatches, noun)
		}
		return &exitError{code: 1, err: fmt.Errorf("%d mismatches", mismatches)}
	}
	return nil
}

// verifyList parses one checksum-file and verifies every referenced target,
// returning the number of mismatches and the number of lines considered.
func verifyList(ctx context.Context, listPath string, o *Options, stdout, stderr io.Writer) (int, int, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return 0, 0, ioError("%s: %v", listPath, err)
	}
	defer f.Close()

	dir := filepath.Dir(listPath)
	mismatches := 0
	total := 0

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		line, ok := checksumfile.Parse(raw)
		if !ok {
			if o.Strict {
				return mismatches, total, ioError("%s: unparsable line %q", listPath, raw)
			}
			if o.Warn {
				fmt.Fprintf(stderr, "%s: unparsable line, skipping: %q\n", listPath, raw)
			}
			continue
		}

		total++
		target := line.Path
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}

		ok, failErr := verifyOne(ctx, target, line)
		switch {
		case failErr != nil:
			mismatches++
			if !o.Status {
				fmt.Fprintf(stdout, "%s: FAILED open or read: %v\n", line.Path, failErr)
			}
		case !ok:
			mismatches++
			if !o.Status {
				fmt.Fprintf(stdout, "%s: FAILED\n", line.Path)
			}
		default:
			if !o.Status && !o.Quiet {
				fmt.Fprintf(stdout, "%s: OK\n", line.Path)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return mismatches, total, ioError("%s: %v", listPath, err)
	}

	return mismatches, total, nil
}

// verifyOne recomputes target's ISCC at the width the checksum line itself
// encodes and compares it against the recorded value.
func verifyOne(ctx context.Context, target string, line checksumfile.Line) (bool, error) {
	dec, err := isccsum.Decode(line.ISCC)
	if err != nil {
		return false, err
	}
	narrow := !dec.Wide

	var files []string
	if line.IsTree {
		filter := ignore.NewISCCFilter(target)
		err := treewalk.Walk(target, filter, func(p string, isDir bool) error {
			if !isDir {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return false, err
		}
	} else {
		files = []string{target}
	}

	res, err := sumItem(ctx, item{files: files}, nil, narrow, false)
	if err != nil {
		return false, err
	}
	return res.ISCC == line.ISCC, nil
}
