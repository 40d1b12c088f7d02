package cli

import (
	"context"
	"fmt"
	"io"
)

// Run executes the tool against the parsed Options, following the
// generation/tree/verify/similar branches described in §4.9. stdin/stdout are
// passed explicitly so the command is testable without swapping os.Stdin.
func Run(ctx context.Context, o *Options, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := o.Validate(); err != nil {
		return err
	}

	switch {
	case o.Check:
		return runVerify(ctx, o, stdout, stderr)
	case o.Similar:
		return runSimilar(ctx, o, stdout, stderr)
	default:
		return runGenerate(ctx, o, stdin, stdout, stderr)
	}
}

// runGenerate implements plain generation and tree mode: one line per item,
// continuing past per-item failures the way §7's input-open-failure rule
// requires.
func runGenerate(ctx context.Context, o *Options, stdin io.Reader, stdout, stderr io.Writer) error {
	items, err := expand(o.Paths, o.Tree)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(o, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	hadFailure := false
	for _, it := range items {
		res, err := sumItem(ctx, it, stdin, o.Narrow, o.Units)
		if err != nil {
			fmt.Fprintln(stderr, err)
			hadFailure = true
			continue
		}
		if err := writeLine(out, it.display, it.isTree, res, o); err != nil {
			return ioError("write output: %v", err)
		}
	}

	if hadFailure {
		return &exitError{code: 2, err: fmt.Errorf("one or more inputs could not be read")}
	}
	return nil
}
