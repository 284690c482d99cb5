package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "setupcheck",
	Short:         "Verify the local environment is ready for the course",
	Long:          "Setupcheck runs a fixed sequence of environment checks and reports pass/fail results with a summary.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "\nverification interrupted by user")
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		// Check failures are already explained by the summary; only
		// unexpected errors need a message here.
		if !errors.Is(err, errVerificationFailed) {
			fmt.Fprintf(os.Stderr, "unexpected error during verification: %v\n", err)
		}
		os.Exit(1)
	}
}
