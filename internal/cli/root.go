package cli

import (
	"github.com/spf13/cobra"

	"github.com/iscc/isccsum/version"
)

// NewRootCmd builds the "isccsum" cobra command, binding every flag of the
// closed option set onto an Options value and dispatching into Run.
func NewRootCmd() *cobra.Command {
	o := &Options{Threshold: 12}

	cmd := &cobra.Command{
		Use:     "isccsum [OPTIONS] [PATH...]",
		Short:   "compute and verify ISCC-SUM content identifiers",
		Version: version.Version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Paths = args
			cmd.SilenceUsage = true
			return Run(cmd.Context(), o, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SilenceErrors = true

	flags := cmd.Flags()
	flags.BoolVarP(&o.Check, "check", "c", false, "read each PATH as a checksum list and verify the referenced targets")
	flags.BoolVar(&o.Tag, "tag", false, "emit BSD-style lines instead of default")
	flags.BoolVarP(&o.Zero, "zero", "z", false, "terminate each output record with a NUL byte instead of a newline")
	flags.BoolVar(&o.Narrow, "narrow", false, "use the 128-bit body; default is 256-bit wide")
	flags.BoolVar(&o.Units, "units", false, "after each line, emit the standalone Data-Code and Instance-Code units")
	flags.BoolVar(&o.Similar, "similar", false, "run similarity clustering over two or more inputs")
	flags.IntVar(&o.Threshold, "threshold", 12, "Hamming-distance cutoff for --similar")
	flags.BoolVarP(&o.Tree, "tree", "t", false, "treat a single directory argument as one logical object")
	flags.BoolVarP(&o.Quiet, "quiet", "q", false, "verification: suppress per-file OK lines")
	flags.BoolVar(&o.Status, "status", false, "verification: emit nothing; exit code carries the result")
	flags.BoolVarP(&o.Warn, "warn", "w", false, "verification: warn on unparsable lines")
	flags.BoolVar(&o.Strict, "strict", false, "verification: unparsable lines are fatal")
	flags.StringVarP(&o.Output, "output", "o", "", "write output to PATH instead of stdout")

	return cmd
}
