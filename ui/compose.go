package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell owners for styling composed runs.
const (
	ownerNone = iota
	ownerContent
	ownerPreview
)

// skipCell marks the trailing half of a double-width rune.
const skipCell = '\x00'

// ComposeSlide paints the content surface and, when shown, the preview
// surface into a width×height cell grid, each shifted horizontally by its
// offset in cells. The preview is painted on top. Input lines must be plain
// text; surface styles are applied to the composed runs here, with the
// preview dimmed when faded below half opacity.
func ComposeSlide(width, height int,
	content []string, contentOffset int, contentStyle lipgloss.Style,
	preview []string, previewOffset int, previewStyle lipgloss.Style,
	showPreview bool, previewOpacity float64,
) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if showPreview && previewOpacity < 0.5 {
		previewStyle = previewStyle.Faint(true)
	}

	var rows []string
	for y := 0; y < height; y++ {
		cells := make([]rune, width)
		owners := make([]int, width)
		for x := range cells {
			cells[x] = ' '
		}

		paintLine(cells, owners, lineAt(content, y), contentOffset, ownerContent)
		if showPreview && previewOpacity > 0 {
			paintLine(cells, owners, lineAt(preview, y), previewOffset, ownerPreview)
		}

		rows = append(rows, styleRuns(cells, owners, contentStyle, previewStyle))
	}
	return strings.Join(rows, "\n")
}

func lineAt(lines []string, y int) string {
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}

// paintLine writes a plain-text line into the cell grid starting at column
// offset, clipping at both window edges and keeping double-width runes
// intact (a wide rune that would be cut in half is dropped).
func paintLine(cells []rune, owners []int, line string, offset, owner int) {
	col := offset
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > len(cells) {
			break
		}
		if col >= 0 {
			cells[col] = r
			owners[col] = owner
			if w == 2 {
				cells[col+1] = skipCell
				owners[col+1] = owner
			}
		}
		col += w
	}
}

// styleRuns renders the cell row, styling contiguous runs by owner.
func styleRuns(cells []rune, owners []int, contentStyle, previewStyle lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	runOwner := owners[0]

	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch runOwner {
		case ownerContent:
			out.WriteString(contentStyle.Render(run.String()))
		case ownerPreview:
			out.WriteString(previewStyle.Render(run.String()))
		default:
			out.WriteString(run.String())
		}
		run.Reset()
	}

	for x, r := range cells {
		if owners[x] != runOwner {
			flush()
			runOwner = owners[x]
		}
		if r != skipCell {
			run.WriteRune(r)
		}
	}
	flush()
	return out.String()
}
