// Package main is the entry point for the quicksave CLI.
package main

import (
	"os"

	"github.com/quicksave/quicksave/cmd/quicksave/commands"
	"github.com/quicksave/quicksave/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.Code(err))
	}
}
