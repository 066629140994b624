package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/f3rmion/zitie/internal/grid"
)

// Color palette
var (
	ColorInk     = lipgloss.Color("#f1faee") // Grid characters
	ColorPinyin  = lipgloss.Color("#a8dadc") // Pinyin tokens
	ColorLabel   = lipgloss.Color("#FF6B6B") // Translation header label
	ColorMuted   = lipgloss.Color("#666666") // Captions
	ColorBorder  = lipgloss.Color("#3d5a80") // Cell borders
	ColorWarning = lipgloss.Color("#ffe66d") // Advisories
)

// Theme holds the lipgloss styles of the terminal sheet.
type Theme struct {
	Cell    lipgloss.Style
	Pinyin  lipgloss.Style
	Border  lipgloss.Style
	Label   lipgloss.Style
	Caption lipgloss.Style
}

// DefaultTheme returns the standard terminal styles.
func DefaultTheme() Theme {
	return Theme{
		Cell:    lipgloss.NewStyle().Foreground(ColorInk).Bold(true),
		Pinyin:  lipgloss.NewStyle().Foreground(ColorPinyin).Italic(true),
		Border:  lipgloss.NewStyle().Foreground(ColorBorder),
		Label:   lipgloss.NewStyle().Foreground(ColorLabel).Bold(true),
		Caption: lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
	}
}

// Terminal renders l as a boxed grid for terminal preview. The poem block and
// the translation block are separate tables; pinyin rows sit directly above
// their character rows. With borders off the box is drawn with a hidden
// border so the sheet keeps its size.
func Terminal(l grid.Layout, theme Theme) string {
	width := CellWidth(l)

	var poemRows, translationRows [][]string
	var header *grid.Header
	for _, line := range l.Lines {
		switch line.Kind {
		case grid.KindTranslationHeader:
			h := line.Header
			header = &h
		case grid.KindTranslation:
			translationRows = append(translationRows, styledCells(line.Cells, theme.Cell))
		default:
			if line.Phonetic != nil {
				poemRows = append(poemRows, pinyinCells(*line.Phonetic, theme.Pinyin))
			}
			poemRows = append(poemRows, styledCells(line.Cells, theme.Cell))
		}
	}

	blocks := []string{newTable(l, theme, width, poemRows)}
	if header != nil {
		blocks = append(blocks, headerLine(*header, theme, lipgloss.Width(blocks[0])))
	}
	if len(translationRows) > 0 {
		blocks = append(blocks, newTable(l, theme, width, translationRows))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func newTable(l grid.Layout, theme Theme, width int, rows [][]string) string {
	border := lipgloss.NormalBorder()
	if !l.Border {
		border = lipgloss.HiddenBorder()
	}

	cellStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	t := table.New().
		Border(border).
		BorderStyle(theme.Border).
		BorderRow(true).
		BorderColumn(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		}).
		Rows(rows...)
	return t.String()
}

func styledCells(row grid.Row, style lipgloss.Style) []string {
	out := make([]string, len(row))
	for i, c := range row {
		if !c.Empty() {
			out[i] = style.Render(string(c))
		}
	}
	return out
}

func pinyinCells(p grid.PhoneticRow, style lipgloss.Style) []string {
	out := make([]string, len(p.Slots))
	if !p.Visible {
		return out
	}
	for i, token := range p.Slots {
		if token != "" {
			out[i] = style.Render(token)
		}
	}
	return out
}

func headerLine(h grid.Header, theme Theme, width int) string {
	left := theme.Label.Render(h.Label)
	right := theme.Caption.Render(h.Caption)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
