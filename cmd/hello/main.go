// hello is a terminal page whose "hello" heading cycles through a fixed
// five-color palette, one color every 700ms, until the program exits.
//
// Usage:
//
//	hello            - Show the page
//	hello palette    - Print the palette
//
// Global flags:
//
//	--config <path>     - Settings file (default search: ~/.hello/config.yaml, ./configs/hello.yaml)
//	--log-level <level> - Override log.level from the settings
//	--headless          - Print each recolor instead of drawing the page
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagHeadless bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hello",
	Short: "A greeting that keeps changing color",
	Long: `hello shows a "Hello, World!" heading in your terminal and recolors it
every 700ms, cycling through a fixed five-color palette.

When stdout is not a terminal, or with --headless, nothing is drawn: each
recolor is printed as "<tick> <color>" instead.

Examples:
  hello
  hello --headless
  hello --config ./my-hello.yaml --log-level debug
  hello palette`,
	Args: cobra.NoArgs,
	Run:  runPage,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Print recolors instead of drawing the page")

	// Add subcommands
	rootCmd.AddCommand(paletteCmd)
}
