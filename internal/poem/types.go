// Package poem provides the poem records and display options consumed by the
// practice-sheet layout.
package poem

import "strings"

// DefaultLocale is the locale assumed when a record or lookup does not name one.
const DefaultLocale = "zh-Hans"

// Placeholder is shown instead of a sheet when no poem is selected or the
// selected poem has nothing to lay out.
const Placeholder = "请选择诗词 / choose a poem"

// AuthorSeparator joins dynasty and name on the author line (e.g. "唐·李白").
const AuthorSeparator = "·"

// Author identifies the poet.
type Author struct {
	Name       string `yaml:"name" json:"name"`
	Dynasty    string `yaml:"dynasty,omitempty" json:"dynasty,omitempty"`
	NamePinYin string `yaml:"name_pinyin,omitempty" json:"namePinYin,omitempty"` // Pinyin of the name, one token per character
}

// Record is a single poem as supplied by the data layer.
// Content holds newline separated lines whose clauses end in 。！？，；.
// ContentPinYin holds one phonetic line per clause, separated by ".".
type Record struct {
	ID            int64  `yaml:"id" json:"id"`
	Locale        string `yaml:"locale,omitempty" json:"locale,omitempty"`
	Title         string `yaml:"title" json:"title"`
	TitlePinYin   string `yaml:"title_pinyin,omitempty" json:"titlePinYin,omitempty"`
	Author        Author `yaml:"author" json:"author"`
	Content       string `yaml:"content" json:"content"`
	ContentPinYin string `yaml:"content_pinyin,omitempty" json:"contentPinYin,omitempty"`
	Translation   string `yaml:"translation,omitempty" json:"translation,omitempty"`
}

// AuthorLine returns the text printed on the author row.
func (r Record) AuthorLine() string {
	dynasty := strings.TrimSpace(r.Author.Dynasty)
	if dynasty == "" {
		return r.Author.Name
	}
	return dynasty + AuthorSeparator + r.Author.Name
}

// LocaleOrDefault returns the record's locale, falling back to DefaultLocale.
func (r Record) LocaleOrDefault() string {
	if r.Locale == "" {
		return DefaultLocale
	}
	return r.Locale
}

// HasTranslation reports whether the record carries any translation text.
func (r Record) HasTranslation() bool {
	return strings.TrimSpace(r.Translation) != ""
}

// Options are the display toggles of the practice sheet.
type Options struct {
	Translation bool `yaml:"translation" json:"translation"` // Append the paginated translation
	PY          bool `yaml:"py" json:"py"`                   // Show the pinyin rows
	Border      bool `yaml:"border" json:"border"`           // Draw cell borders
}

// DefaultOptions returns the toggles a fresh sheet starts with.
func DefaultOptions() Options {
	return Options{
		Translation: true,
		PY:          false,
		Border:      true,
	}
}
