package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hello/internal/core"
	"github.com/vovakirdan/tui-hello/internal/platform/tui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the color palette",
	Long:  `Prints the colors the heading cycles through, in cycling order.`,
	Args:  cobra.NoArgs,
	Run:   runPalette,
}

func runPalette(_ *cobra.Command, _ []string) {
	p := core.DefaultPalette
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Palette (%d colors, one every %v):\n", p.Len(), core.TickPeriod)
	fmt.Println()
	fmt.Println(tui.RenderSwatches(p))
	fmt.Println()

	// Print RGB channels
	fmt.Printf("  %-5s  %-7s  %s\n", "Tick", "Hex", "RGB")
	fmt.Printf("  %-5s  %-7s  %s\n", "----", "---", "---")
	for i, hex := range p {
		r, g, b, err := p.RGB(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %-5d  %-7s  %3d %3d %3d\n", i, hex, r, g, b)
	}

	fmt.Println()
	fmt.Printf("Tick N uses entry N mod %d.\n", p.Len())
}
