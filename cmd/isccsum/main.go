// Command isccsum computes and verifies ISCC-SUM content identifiers over
// files, streams, and directory trees.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/iscc/isccsum/internal/cli"
	"github.com/iscc/isccsum/internal/dcontext"
)

func main() {
	configureLogging()

	ctx := dcontext.WithLogger(context.Background(), dcontext.GetLogger(context.Background()))

	root := cli.NewRootCmd()
	root.SetArgs(os.Args[1:])

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "isccsum: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}

// configureLogging sets the process-wide logrus level; isccsum has no
// configuration file and no environment variables (§6), so this is the only
// logging knob there is.
func configureLogging() {
	logrus.SetLevel(logrus.WarnLevel)
	logrus.SetOutput(os.Stderr)
}
