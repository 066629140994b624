// Package config handles loading and saving the practice-sheet configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/zitie/internal/grid"
	"github.com/f3rmion/zitie/internal/pinyin"
	"github.com/f3rmion/zitie/internal/poem"
	"gopkg.in/yaml.v3"
)

// SheetFile is the name of the sheet configuration inside the config directory.
const SheetFile = "sheet.yaml"

// StoreFile is the default name of the poem database inside the config directory.
const StoreFile = "poems.db"

// Sheet holds everything that shapes a printed practice sheet.
type Sheet struct {
	Columns     int          `yaml:"columns"`
	Options     poem.Options `yaml:"options"`
	Header      HeaderConfig `yaml:"header"`
	Page        PageConfig   `yaml:"page"`
	PinyinStyle pinyin.Style `yaml:"pinyin_style"` // marks, numbers or plain
	Locale      string       `yaml:"locale"`
	Store       string       `yaml:"store,omitempty"` // Poem database; defaults to <config dir>/poems.db
}

// HeaderConfig is the label row printed above the translation.
type HeaderConfig struct {
	Label   string `yaml:"label"`
	Caption string `yaml:"caption"`
}

// PageConfig describes the printed page in pixels.
type PageConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Margin     int      `yaml:"margin"`
	Font       string   `yaml:"font,omitempty"`        // CJK font used for the grid characters
	PinyinFont string   `yaml:"pinyin_font,omitempty"` // Font used for pinyin and captions
	FontPaths  []string `yaml:"font_paths,omitempty"`  // Extra fonts tried before the system ones
}

// DefaultSheet returns the configuration used when no sheet.yaml exists.
func DefaultSheet() *Sheet {
	return &Sheet{
		Columns: grid.DefaultColumns,
		Options: poem.DefaultOptions(),
		Header: HeaderConfig{
			Label:   grid.DefaultHeader.Label,
			Caption: grid.DefaultHeader.Caption,
		},
		Page: PageConfig{
			Width:  938,
			Height: 1754,
			Margin: 24,
		},
		PinyinStyle: pinyin.StyleMarks,
		Locale:      poem.DefaultLocale,
	}
}

// Grid returns the layout grid described by the sheet.
func (s *Sheet) Grid() grid.Grid {
	g := grid.New(s.Columns)
	g.Header = grid.Header{Label: s.Header.Label, Caption: s.Header.Caption}
	return g
}

// StorePath returns the poem database path, resolved against dir.
func (s *Sheet) StorePath(dir string) string {
	if s.Store == "" {
		return filepath.Join(dir, StoreFile)
	}
	if filepath.IsAbs(s.Store) {
		return s.Store
	}
	return filepath.Join(dir, s.Store)
}

// LoadSheet loads a sheet configuration from a YAML file. Keys missing from
// the file keep their default values.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet file: %w", err)
	}

	sheet := DefaultSheet()
	if err := yaml.Unmarshal(data, sheet); err != nil {
		return nil, fmt.Errorf("parsing sheet file: %w", err)
	}

	if sheet.Columns <= 0 {
		return nil, fmt.Errorf("columns must be positive, got %d", sheet.Columns)
	}
	switch sheet.PinyinStyle {
	case pinyin.StyleMarks, pinyin.StyleNumbers, pinyin.StylePlain:
	default:
		return nil, fmt.Errorf("unknown pinyin_style %q", sheet.PinyinStyle)
	}

	return sheet, nil
}

// LoadSheetDir loads sheet.yaml from dir, falling back to the defaults when
// the file does not exist.
func LoadSheetDir(dir string) (*Sheet, error) {
	path := filepath.Join(dir, SheetFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSheet(), nil
	}
	return LoadSheet(path)
}

// SaveSheet saves a sheet configuration to a YAML file.
func SaveSheet(path string, sheet *Sheet) error {
	out, err := yaml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("marshaling sheet: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing sheet file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "zitie"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
