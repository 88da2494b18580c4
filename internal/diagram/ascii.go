package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Graph renders q along the beam as a terminal line chart
func Graph(pts []beam.DiagramPoint, q Quantity, width, height int) string {
	if len(pts) == 0 {
		return ""
	}
	caption := q.Title()
	if n := len(pts); n > 1 {
		caption += fmt.Sprintf("  [x = %g .. %g m]", pts[0].Position, pts[n-1].Position)
	}
	return asciigraph.Plot(q.Values(pts),
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

// DrawSection creates an ASCII drawing of the section with its stress
// block, neutral axis and bar layers
func DrawSection(data SectionData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20
	row := func(depth float64) int {
		return int(depth / data.Height * float64(heightChars))
	}

	// bar rows keyed by drawing line, counted from the top
	bars := map[int]int{}
	for _, p := range data.TensionBars() {
		bars[row(data.Height-p.Y)]++
	}
	for _, p := range data.CompressionBars() {
		bars[row(data.Height-p.Y)]++
	}
	for _, p := range data.SideBars() {
		bars[row(data.Height-p.Y)]++
	}
	aLine := row(data.StressBlockDepth)
	naLine := -1
	if data.NeutralAxisDepth > 0 {
		naLine = row(data.NeutralAxisDepth)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  SECTION %g x %g mm\n", data.Width, data.Height))
	sb.WriteString("  ──────────────────\n")

	for i := 0; i <= heightChars; i++ {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			fill := []rune(strings.Repeat(" ", widthChars))
			if data.StressBlockDepth > 0 && i <= aLine {
				fill = []rune(strings.Repeat("░", widthChars))
			}
			if n := bars[i]; n > 0 {
				for k := 0; k < n; k++ {
					col := widthChars / 2
					if n > 1 {
						col = 2 + k*(widthChars-5)/(n-1)
					}
					fill[col] = '●'
				}
			}
			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
		}
		switch {
		case i == naLine:
			sb.WriteString(fmt.Sprintf(" ◄─ N.A. (c = %.1f mm)", data.NeutralAxisDepth))
		case i == aLine && data.StressBlockDepth > 0:
			sb.WriteString(fmt.Sprintf(" ◄─ a = %.1f mm", data.StressBlockDepth))
		case bars[i] > 0:
			sb.WriteString(fmt.Sprintf(" ◄─ %d bars", bars[i]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Tension:     %s, As = %.0f mm²\n", data.Tension, data.Tension.AsProvided))
	if data.Compression != nil {
		sb.WriteString(fmt.Sprintf("  Compression: %s, A's = %.0f mm²\n", data.Compression, data.Compression.AsProvided))
	}
	if data.StressBlockDepth > 0 {
		sb.WriteString("  ░░░ = compression zone (stress block)\n")
	}
	return sb.String()
}

// SummaryBox frames a title and lines in a double-line box
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	pad := func(s string) string {
		return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}
