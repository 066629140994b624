// Package grid lays poems out on the fixed-width cell grid of a practice
// sheet.
//
// Every line of a poem (title, author, each punctuated clause) occupies one
// row of Columns square cells, optionally topped by a pinyin row whose tokens
// sit exactly above their characters. Translations are chunked into extra
// left-aligned rows. All functions are pure and safe for concurrent use.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultColumns is the width of a practice sheet in cells.
const DefaultColumns = 12

var (
	// ErrNoContent means the poem body holds no punctuated clause.
	ErrNoContent = errors.New("no punctuated clauses in poem content")

	// ErrLineTooLong means a line has more characters than the grid has columns.
	ErrLineTooLong = errors.New("line too long for grid")
)

// Align selects how a line sits inside its row.
type Align int

const (
	AlignCenter Align = iota // Default; odd remainders leave the extra cell on the right
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// Cell is a single display character, or "" for an empty cell.
type Cell string

// Empty reports whether nothing is printed in the cell.
func (c Cell) Empty() bool {
	return c == ""
}

// Row is one grid row of exactly Columns cells.
type Row []Cell

// Text concatenates the non-empty cells in order.
func (r Row) Text() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteString(string(c))
	}
	return b.String()
}

// FirstFilled returns the index of the first non-empty cell, or -1.
func (r Row) FirstFilled() int {
	for i, c := range r {
		if !c.Empty() {
			return i
		}
	}
	return -1
}

// PhoneticRow holds the pinyin tokens printed above a Row. A hidden row keeps
// its slots so that toggling visibility never moves a character cell.
type PhoneticRow struct {
	Slots   []string
	Visible bool
}

// Tokens returns the non-empty slots in order.
func (p PhoneticRow) Tokens() []string {
	var tokens []string
	for _, s := range p.Slots {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// Header is the label row printed above the translation.
type Header struct {
	Label   string
	Caption string
}

// DefaultHeader is the translation header of a fresh sheet.
var DefaultHeader = Header{Label: "译文", Caption: "古诗词练习 | 田字格字帖"}

// Grid carries the sheet geometry shared by every formatter.
type Grid struct {
	Columns int
	Header  Header
}

// New returns a grid of the given width. A non-positive width selects
// DefaultColumns.
func New(columns int) Grid {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return Grid{Columns: columns, Header: DefaultHeader}
}

// Default returns the standard 12-column grid.
func Default() Grid {
	return New(DefaultColumns)
}

// Offset returns the number of empty cells before a run of n characters (or
// tokens) aligned with align. Text rows and pinyin rows both place their
// content with this offset, which is what keeps each syllable above its
// character.
func (g Grid) Offset(n int, align Align) int {
	g = g.withDefaults()
	switch align {
	case AlignLeft:
		return 0
	case AlignRight:
		return g.Columns - n
	default:
		return (g.Columns - n) / 2
	}
}

// withDefaults fills in the zero-value fields of a Grid literal.
func (g Grid) withDefaults() Grid {
	if g.Columns <= 0 {
		g.Columns = DefaultColumns
	}
	return g
}

func (g Grid) checkFits(text string, n int) error {
	if n > g.Columns {
		return fmt.Errorf("%w: %q has %d cells, grid has %d columns", ErrLineTooLong, text, n, g.Columns)
	}
	return nil
}
