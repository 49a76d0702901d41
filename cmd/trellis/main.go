// Package main is the entry point for the Trellis CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/trelliskit/cli/internal/cmd"
	terrors "github.com/trelliskit/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// The command layer may have displayed the error already.
		var exitErr *terrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Printed {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
