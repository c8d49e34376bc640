package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the ordered list of hex RGB colors the target element cycles through.
// It is an array so every copy is independent and callers cannot mutate the
// shared default through a slice alias.
type Palette [5]string

// DefaultPalette is the fixed cycling order.
var DefaultPalette = Palette{
	"#1e90ff", // dodger blue
	"#ff69b4", // hot pink
	"#32cd32", // lime green
	"#ffa500", // orange
	"#8a2be2", // blue violet
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p)
}

// At returns the color for tick n, wrapping around the palette.
func (p Palette) At(n uint64) string {
	return p[n%uint64(len(p))]
}

// Validate checks that every entry parses as a hex RGB color.
func (p Palette) Validate() error {
	for i, hex := range p {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("palette entry %d (%q): %w", i, hex, err)
		}
	}
	return nil
}

// RGB returns the 8-bit channels of entry i.
func (p Palette) RGB(i int) (r, g, b uint8, err error) {
	c, err := colorful.Hex(p[i])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("palette entry %d (%q): %w", i, p[i], err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}
