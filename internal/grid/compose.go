package grid

import (
	"fmt"
	"strings"

	"github.com/f3rmion/zitie/internal/poem"
)

// PhoneticSeparator separates the per-clause pinyin lines of a poem body.
const PhoneticSeparator = "."

// AdvisoryRegulatedVerse is reported for poems with more than two clauses,
// where a pinyin row above every line crowds the page.
const AdvisoryRegulatedVerse = "律诗不适合开启拼音 (pinyin rows are not recommended for regulated verse)"

// LineKind tells renderers what a composed line is.
type LineKind int

const (
	KindTitle LineKind = iota
	KindAuthor
	KindClause
	KindTranslationHeader
	KindTranslation
)

func (k LineKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindAuthor:
		return "author"
	case KindClause:
		return "clause"
	case KindTranslationHeader:
		return "translation-header"
	case KindTranslation:
		return "translation"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// LogicalLine pairs one line of poem text with its pinyin line.
type LogicalLine struct {
	Kind      LineKind
	Text      string
	Phonetics string
	Align     Align
}

// Line is one composed row of the sheet. Poem lines carry a Phonetic row;
// translation rows do not. The header line has no cells, only Header.
type Line struct {
	Kind     LineKind
	Cells    Row
	Phonetic *PhoneticRow
	Header   Header
}

// Layout is the ordered row sequence of a practice sheet.
type Layout struct {
	Columns  int
	Border   bool
	Lines    []Line
	Advisory string
}

// LogicalLines returns [title, author, clause1, ..., clauseN] with each
// entry's alignment and pinyin line already resolved.
func LogicalLines(rec poem.Record) ([]LogicalLine, error) {
	clauses, err := Segment(rec.Content)
	if err != nil {
		return nil, err
	}

	phonetics := strings.Split(rec.ContentPinYin, PhoneticSeparator)
	clausePhonetics := func(i int) string {
		if i < len(phonetics) {
			return strings.TrimSpace(phonetics[i])
		}
		return ""
	}

	lines := make([]LogicalLine, 0, len(clauses)+2)
	lines = append(lines,
		LogicalLine{Kind: KindTitle, Text: rec.Title, Phonetics: rec.TitlePinYin, Align: AlignCenter},
		LogicalLine{Kind: KindAuthor, Text: rec.AuthorLine(), Phonetics: rec.Author.NamePinYin, Align: AlignRight},
	)
	for i, clause := range clauses {
		lines = append(lines, LogicalLine{
			Kind:      KindClause,
			Text:      clause,
			Phonetics: clausePhonetics(i),
			Align:     AlignCenter,
		})
	}
	return lines, nil
}

// Compose lays out a whole poem. Pinyin rows are always computed and only
// marked visible when opts.PY is set. A pinyin line longer than the grid is
// an error only when pinyin is shown. The translation header and rows are
// appended when opts.Translation is set and the poem has a translation.
func (g Grid) Compose(rec poem.Record, opts poem.Options) (Layout, error) {
	g = g.withDefaults()

	logical, err := LogicalLines(rec)
	if err != nil {
		return Layout{}, err
	}

	layout := Layout{
		Columns: g.Columns,
		Border:  opts.Border,
		Lines:   make([]Line, 0, len(logical)),
	}
	if len(logical)-2 > 2 {
		layout.Advisory = AdvisoryRegulatedVerse
	}

	for _, ll := range logical {
		cells, err := g.FormatRow(ll.Text, ll.Align)
		if err != nil {
			return Layout{}, fmt.Errorf("%s row: %w", ll.Kind, err)
		}
		phonetic, err := g.FormatPhoneticRow(ll.Phonetics, ll.Align)
		switch {
		case err != nil && opts.PY:
			return Layout{}, fmt.Errorf("%s pinyin row: %w", ll.Kind, err)
		case err != nil:
			// Hidden pinyin that does not fit degrades to a blank row.
			phonetic = PhoneticRow{Slots: make([]string, g.Columns)}
		}
		phonetic.Visible = opts.PY

		layout.Lines = append(layout.Lines, Line{Kind: ll.Kind, Cells: cells, Phonetic: &phonetic})
	}

	if !opts.Translation || !rec.HasTranslation() {
		return layout, nil
	}

	rows, err := g.Paginate(rec.Translation)
	if err != nil {
		return Layout{}, fmt.Errorf("translation: %w", err)
	}
	layout.Lines = append(layout.Lines, Line{Kind: KindTranslationHeader, Header: g.Header})
	for _, row := range rows {
		layout.Lines = append(layout.Lines, Line{Kind: KindTranslation, Cells: row})
	}
	return layout, nil
}

// WithPhonetics returns a copy of the layout whose pinyin rows are shown or
// hidden. Cell positions are untouched.
func (l Layout) WithPhonetics(visible bool) Layout {
	lines := make([]Line, len(l.Lines))
	for i, line := range l.Lines {
		if line.Phonetic != nil {
			p := *line.Phonetic
			p.Visible = visible
			line.Phonetic = &p
		}
		lines[i] = line
	}
	l.Lines = lines
	return l
}

// WithBorder returns a copy of the layout with cell borders switched on or off.
func (l Layout) WithBorder(border bool) Layout {
	l.Border = border
	return l
}

// PoemLines returns the title, author and clause lines.
func (l Layout) PoemLines() []Line {
	var out []Line
	for _, line := range l.Lines {
		if line.Phonetic != nil {
			out = append(out, line)
		}
	}
	return out
}

// TranslationLines returns the header and translation rows, if any.
func (l Layout) TranslationLines() []Line {
	var out []Line
	for _, line := range l.Lines {
		if line.Kind == KindTranslationHeader || line.Kind == KindTranslation {
			out = append(out, line)
		}
	}
	return out
}
