package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridcut/topology"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorGray  = lipgloss.Color("245") // Gray - keys
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
	colorWhite = lipgloss.Color("255") // Bright white - values
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

// labelPalette colors labels in the rendered labeling, cycling when there
// are more labels than colors.
var labelPalette = []lipgloss.Color{"24", "30", "36", "72", "108", "144", "180", "216", "173", "167", "132", "97"}

const glyphs = "0123456789abcdefghijklmnopqrstuvwxyz"

// glyph returns the one-character symbol of label l.
func glyph(l int) string {
	if l >= 0 && l < len(glyphs) {
		return glyphs[l : l+1]
	}
	return "+"
}

// printKeyValue writes a labeled value line.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// renderLabeling draws labels as one character per site, one block of rows
// per z-slice. With color set, every label gets a background from
// labelPalette.
func renderLabeling(g *topology.Grid, labels []int, color bool) string {
	styles := make(map[int]lipgloss.Style)
	cell := func(l int) string {
		if !color {
			return glyph(l)
		}
		st, ok := styles[l]
		if !ok {
			bg := labelPalette[l%len(labelPalette)]
			st = lipgloss.NewStyle().Background(bg).Foreground(colorWhite)
			styles[l] = st
		}
		return st.Render(glyph(l))
	}

	var b strings.Builder
	for z := 0; z < g.Depth; z++ {
		if g.Depth > 1 {
			b.WriteString(styleDim.Render(fmt.Sprintf("z=%d", z)))
			b.WriteByte('\n')
		}
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				b.WriteString(cell(labels[g.Index(x, y, z)]))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
