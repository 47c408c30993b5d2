// Dingz is a command line client for dingz room controllers.
//
// It talks to a device over its local HTTP API and exposes the
// device's information, configuration and sensor state, plus direct
// control of the dimmer outputs, blinds and front LED.
//
// Usage:
//
//	dingz [command] [flags]
//
// The device address comes from the --host flag or from the host
// setting in the config file. See 'dingz --help' for available
// commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dingz",
	Short: "Dingz Room Controller Client",
	Long: `A command line client for dingz room controllers.

Reads device information, configuration and sensor state over the
local HTTP API, and controls the dimmer outputs, blinds and front LED.`,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
