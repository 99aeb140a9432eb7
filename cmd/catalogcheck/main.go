package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/YoshitsuguKoike/catalogcheck/internal/interface/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		// The report already explains a validation failure
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
}
