package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/siebrand/dataknead/config"
	"github.com/siebrand/dataknead/internal"
	"github.com/siebrand/dataknead/loader"
)

// Main locks down customizations, loads config, and runs the root command.
// Wrappers register their loaders and commands before calling it.
func Main() {
	internal.LockCustomizations()
	if err := config.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	loader.Initialize()
	if err := Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		ec := 1
		var ece ExitCodeErr
		if errors.As(err, &ece) {
			ec = ece.ExitCode()
		}
		os.Exit(ec)
	}
}

type ExitCodeErr interface {
	ExitCode() int
}
