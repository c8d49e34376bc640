package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hello/internal/core"
	"github.com/vovakirdan/tui-hello/internal/page"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// elementStyle returns the style for an element, applying its current color.
func elementStyle(el *page.Element) lipgloss.Style {
	style := captionStyle
	if el.ID() == core.TargetID {
		style = headingStyle
	}
	if c := el.Color(); c != "" {
		style = style.Foreground(lipgloss.Color(c))
	}
	return style
}

// RenderDocument renders every element on its own line, centered in a
// width x height area. Zero dimensions skip the placement.
func RenderDocument(doc *page.Document, width, height int) string {
	els := doc.Elements()
	lines := make([]string, 0, len(els))
	for _, el := range els {
		lines = append(lines, elementStyle(el).Render(el.Text()))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// RenderSwatches renders one colored block per palette entry followed by its
// hex value, one per line.
func RenderSwatches(p core.Palette) string {
	var sb strings.Builder
	for i, hex := range p {
		if i > 0 {
			sb.WriteRune('\n')
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		sb.WriteString(swatch)
		sb.WriteRune(' ')
		sb.WriteString(hex)
	}
	return sb.String()
}
