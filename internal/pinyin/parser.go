// Package pinyin derives pinyin lines for poems whose records lack them.
package pinyin

import (
	"strings"
	"unicode"

	"github.com/f3rmion/zitie/internal/grid"
	"github.com/f3rmion/zitie/internal/poem"
	gopinyin "github.com/mozillazg/go-pinyin"
)

// Style selects how tones are written.
type Style string

const (
	StyleMarks   Style = "marks"   // zhōng
	StyleNumbers Style = "numbers" // zhong1
	StylePlain   Style = "plain"   // zhong
)

// Parser converts Han characters to pinyin syllables.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a parser writing syllables in the given style. Unknown
// styles fall back to tone marks.
func NewParser(style Style) *Parser {
	args := gopinyin.NewArgs()
	switch style {
	case StyleNumbers:
		args.Style = gopinyin.Tone3
	case StylePlain:
		args.Style = gopinyin.Normal
	default:
		args.Style = gopinyin.Tone
	}
	args.Heteronym = false // First (most common) reading only
	args.Fallback = keepRune
	return &Parser{args: args}
}

// keepRune makes every non-Han character its own token, so a line yields
// exactly one token per cell. Whitespace yields none.
func keepRune(r rune, _ gopinyin.Args) []string {
	if unicode.IsSpace(r) {
		return nil
	}
	return []string{string(r)}
}

// Syllables returns one token per character of text: the syllable of a Han
// character, the character itself for punctuation and Latin text.
func (p *Parser) Syllables(text string) []string {
	return gopinyin.LazyPinyin(text, p.args)
}

// Line returns the syllables of text joined by single spaces.
func (p *Parser) Line(text string) string {
	return strings.Join(p.Syllables(text), " ")
}

// Content returns the pinyin of every clause of content, joined with
// grid.PhoneticSeparator so the lines pair up with the clauses the layout
// produces. Content that cannot be segmented yields "".
func (p *Parser) Content(content string) string {
	clauses, err := grid.Segment(content)
	if err != nil {
		return ""
	}

	lines := make([]string, len(clauses))
	for i, clause := range clauses {
		lines[i] = p.Line(clause)
	}
	return strings.Join(lines, grid.PhoneticSeparator)
}

// Fill returns a copy of rec whose empty pinyin fields are derived from the
// text. Fields already present are kept as they are.
func (p *Parser) Fill(rec poem.Record) poem.Record {
	if strings.TrimSpace(rec.TitlePinYin) == "" {
		rec.TitlePinYin = p.Line(rec.Title)
	}
	if strings.TrimSpace(rec.Author.NamePinYin) == "" {
		rec.Author.NamePinYin = p.Line(rec.Author.Name)
	}
	if strings.TrimSpace(rec.ContentPinYin) == "" {
		rec.ContentPinYin = p.Content(rec.Content)
	}
	return rec
}

// Missing reports whether any pinyin field of rec is empty.
func Missing(rec poem.Record) bool {
	return strings.TrimSpace(rec.TitlePinYin) == "" ||
		strings.TrimSpace(rec.Author.NamePinYin) == "" ||
		strings.TrimSpace(rec.ContentPinYin) == ""
}
