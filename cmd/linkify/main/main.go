package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/konradko/linkify/cmd/linkify"
	"github.com/konradko/linkify/pkg/ui"
)

func main() {
	rootCmd := linkify.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// The downstream consumer closing the pipe early is how streaming
		// filters normally end; it is not an error worth reporting.
		if errors.Is(err, syscall.EPIPE) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
