package cube

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// swatch maps the default palette's letters to a muted foreground color,
// following the teacher's preference for readable (not eye-burning)
// terminal colors, rendered here through lipgloss instead of raw ANSI
// escapes.
var swatch = map[byte]lipgloss.Color{
	'W': lipgloss.Color("255"),
	'G': lipgloss.Color("34"),
	'O': lipgloss.Color("208"),
	'B': lipgloss.Color("33"),
	'R': lipgloss.Color("160"),
	'Y': lipgloss.Color("220"),
}

// Render returns a face-by-face rendering of the cube. When color is
// true, each facelet is styled with lipgloss using the palette's
// associated swatch (falling back to the plain letter for symbols
// outside DefaultPalette); otherwise it prints the bare palette letters.
func (c *Cube) Render(color bool) string {
	var sb strings.Builder
	faceNames := [...]string{"Up", "Left", "Front", "Right", "Back", "Down"}

	for f := 0; f < 6; f++ {
		sb.WriteString(faceNames[f])
		sb.WriteString(":\n")
		for r := 0; r < c.N; r++ {
			for col := 0; col < c.N; col++ {
				b := c.Palette[c.Faces[f][r][col]]
				if color {
					style := lipgloss.NewStyle()
					if sw, ok := swatch[b]; ok {
						style = style.Foreground(sw).Bold(true)
					}
					sb.WriteString(style.Render(string(b)))
				} else {
					sb.WriteByte(b)
				}
				sb.WriteString(" ")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
