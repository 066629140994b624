package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ErrNoFont is returned when none of the candidate font files could be used.
var ErrNoFont = errors.New("no usable font found")

// SystemFontPaths are common locations of CJK fonts.
var SystemFontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSerifCJK-Regular.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/arphic/ukai.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\simkai.ttf",
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

// FontSource produces faces of a parsed font at any size.
type FontSource interface {
	Face(size float64) (font.Face, error)
}

type openTypeSource struct {
	font *opentype.Font
}

func (s openTypeSource) Face(size float64) (font.Face, error) {
	return opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

type trueTypeSource struct {
	font *truetype.Font
}

func (s trueTypeSource) Face(size float64) (font.Face, error) {
	return truetype.NewFace(s.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

type basicSource struct{}

func (basicSource) Face(float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// BasicFont returns the built-in bitmap font. It has no CJK glyphs and only
// serves as a last resort so a sheet can always be drawn.
func BasicFont() FontSource {
	return basicSource{}
}

// ParseFont parses font data. Collections (.ttc) yield their first font.
// Fonts that x/image/opentype rejects are retried with freetype's parser.
func ParseFont(data []byte) (FontSource, error) {
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return openTypeSource{font: fnt}, nil
		}
	}

	if fnt, err := opentype.Parse(data); err == nil {
		return openTypeSource{font: fnt}, nil
	}

	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return trueTypeSource{font: fnt}, nil
}

// LoadFont returns the first of paths that can be read and parsed, together
// with the path it came from.
func LoadFont(paths ...string) (FontSource, string, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		src, err := ParseFont(data)
		if err != nil {
			continue
		}
		return src, path, nil
	}
	return nil, "", ErrNoFont
}

// FindFont tries the preferred paths, then SystemFontPaths, then falls back
// to BasicFont. The returned path is empty for the fallback.
func FindFont(preferred ...string) (FontSource, string) {
	paths := append(append([]string{}, preferred...), SystemFontPaths...)
	if src, path, err := LoadFont(paths...); err == nil {
		return src, path
	}
	return BasicFont(), ""
}
