// Package render turns a composed grid.Layout into something printable: plain
// text, a styled terminal sheet, or a PNG page.
package render

import (
	"strings"

	"github.com/f3rmion/zitie/internal/grid"
	"github.com/mattn/go-runewidth"
)

// minCellWidth fits one full-width character.
const minCellWidth = 2

// CellWidth returns the terminal width every cell of l is padded to: wide
// enough for a CJK character and for the longest pinyin token. Hidden pinyin
// rows count too, so toggling them never changes the width.
func CellWidth(l grid.Layout) int {
	width := minCellWidth
	for _, line := range l.Lines {
		for _, c := range line.Cells {
			width = max(width, runewidth.StringWidth(string(c)))
		}
		if line.Phonetic == nil {
			continue
		}
		for _, token := range line.Phonetic.Slots {
			width = max(width, runewidth.StringWidth(token))
		}
	}
	return width
}

// center pads s with spaces to width display columns, extra space on the right.
func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Text renders l as plain text. Each cell is centered in CellWidth columns;
// with borders on, cells are separated by "|" and rows framed by "+---+"
// rules. A hidden pinyin row is printed as a blank line so row positions do
// not depend on the toggle.
func Text(l grid.Layout) string {
	width := CellWidth(l)
	sep := " "
	if l.Border {
		sep = "|"
	}
	rule := "+" + strings.Repeat(strings.Repeat("-", width)+"+", l.Columns)

	var b strings.Builder
	writeCells := func(cells []string) {
		b.WriteString(sep)
		for _, c := range cells {
			b.WriteString(center(c, width))
			b.WriteString(sep)
		}
		b.WriteString("\n")
	}

	for _, line := range l.Lines {
		if line.Kind == grid.KindTranslationHeader {
			b.WriteString("\n")
			b.WriteString(line.Header.Label)
			if line.Header.Caption != "" {
				b.WriteString("  ")
				b.WriteString(line.Header.Caption)
			}
			b.WriteString("\n")
			continue
		}

		if line.Phonetic != nil {
			if line.Phonetic.Visible {
				writeCells(line.Phonetic.Slots)
			} else {
				b.WriteString("\n")
			}
		}

		if l.Border {
			b.WriteString(rule)
			b.WriteString("\n")
		}
		cells := make([]string, len(line.Cells))
		for i, c := range line.Cells {
			cells[i] = string(c)
		}
		writeCells(cells)
		if l.Border {
			b.WriteString(rule)
			b.WriteString("\n")
		}
	}

	return b.String()
}
