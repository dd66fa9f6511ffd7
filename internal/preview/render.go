package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/sdftext"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	glyphStyle = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Terminal renders geom as a framed braille preview with a title line and a
// footer summarizing the geometry.
func Terminal(geom sdftext.RenderGeometry, title string, cols, rows int) string {
	body := glyphStyle.Render(strings.Join(Braille(geom, cols, rows), "\n"))
	footer := dimStyle.Render(fmt.Sprintf("%d contours, %d segments", len(geom), geom.SegmentCount()))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		body,
		footer,
	))
}
