package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/f3rmion/zitie/internal/grid"
	"github.com/f3rmion/zitie/internal/poem"
)

func jingYeSi() poem.Record {
	return poem.Record{
		ID:          1,
		Title:       "静夜思",
		TitlePinYin: "jìng yè sī",
		Author:      poem.Author{Name: "李白", Dynasty: "唐", NamePinYin: "lǐ bái"},
		Content:     "床前明月光，疑是地上霜。\n举头望明月，低头思故乡。",
		ContentPinYin: "chuáng qián míng yuè guāng.yí shì dì shàng shuāng." +
			"jǔ tóu wàng míng yuè.dī tóu sī gù xiāng",
		Translation: "明亮的月光洒在窗户纸上，好像地上泛起了一层霜。",
	}
}

func compose(t *testing.T, opts poem.Options) grid.Layout {
	t.Helper()
	l, err := grid.Default().Compose(jingYeSi(), opts)
	require.NoError(t, err)
	return l
}

func TestCellWidth(t *testing.T) {
	l := compose(t, poem.DefaultOptions())
	// "chuáng" and "shuāng" are the widest tokens.
	assert.Equal(t, 6, CellWidth(l))
	assert.Equal(t, CellWidth(l), CellWidth(l.WithPhonetics(true)))

	assert.Equal(t, minCellWidth, CellWidth(grid.Layout{Columns: 12}))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  静  ", center("静", 6))
	assert.Equal(t, " ab  ", center("ab", 5))
	assert.Equal(t, "toolong", center("toolong", 3))
}

func TestText(t *testing.T) {
	out := Text(compose(t, poem.DefaultOptions()))

	assert.Contains(t, out, "静")
	assert.Contains(t, out, "唐")
	assert.Contains(t, out, "+------+")
	assert.Contains(t, out, "译文  古诗词练习 | 田字格字帖")
	assert.NotContains(t, out, "jìng", "pinyin is hidden by default")
}

func TestTextPhoneticToggleKeepsRows(t *testing.T) {
	l := compose(t, poem.DefaultOptions())
	hidden := Text(l)
	shown := Text(l.WithPhonetics(true))

	assert.Contains(t, shown, "jìng")
	assert.Equal(t, strings.Count(hidden, "\n"), strings.Count(shown, "\n"))
}

func TestTextWithoutBorder(t *testing.T) {
	out := Text(compose(t, poem.Options{Translation: false, PY: true, Border: false}))

	assert.NotContains(t, out, "+")
	assert.NotContains(t, out, "|")
	assert.NotContains(t, out, "译文")
	assert.Contains(t, out, "xiāng")
}

func TestTerminal(t *testing.T) {
	theme := DefaultTheme()

	out := Terminal(compose(t, poem.Options{Translation: true, PY: true, Border: true}), theme)
	assert.Contains(t, out, "静")
	assert.Contains(t, out, "jìng")
	assert.Contains(t, out, "译文")
	assert.Contains(t, out, "│")

	plain := Terminal(compose(t, poem.Options{Translation: false, PY: false, Border: false}), theme)
	assert.Contains(t, plain, "静")
	assert.NotContains(t, plain, "jìng")
	assert.NotContains(t, plain, "译文")
	assert.NotContains(t, plain, "│")
}

func TestImageRender(t *testing.T) {
	r := Image{Width: 240, Height: 100, Margin: 0}
	l := compose(t, poem.Options{Translation: true, PY: true, Border: true})

	img, err := r.Render(l)
	require.NoError(t, err)

	m := r.metrics(l.Columns)
	assert.Equal(t, 20, m.cell)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, m.contentHeight(l), img.Bounds().Dy(), "page grows to fit the content")

	// Top-left corner of the title cells.
	y := m.top + m.gap + m.band
	assert.Equal(t, colorGrid, img.RGBAAt(0, y))
	assert.Equal(t, colorGrid, img.RGBAAt(m.cell, y+1))
}

func TestImageRenderWithoutBorder(t *testing.T) {
	r := Image{Width: 240, Height: 2000, Margin: 10}
	l := compose(t, poem.Options{Translation: false, PY: false, Border: false})

	img, err := r.Render(l)
	require.NoError(t, err)
	assert.Equal(t, 2000, img.Bounds().Dy(), "configured height is kept when the content fits")

	m := r.metrics(l.Columns)
	y := m.top + m.gap + m.band
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(m.left, y))
}

func TestImageRenderErrors(t *testing.T) {
	_, err := Image{Width: 240}.Render(grid.Layout{})
	assert.Error(t, err)

	_, err = Image{Width: 10}.Render(grid.Layout{Columns: 12})
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	r := Image{Width: 360, Height: 200, Margin: 12}
	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf, compose(t, poem.DefaultOptions())))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 360, img.Bounds().Dx())
}

func TestParseFont(t *testing.T) {
	src, err := ParseFont(goregular.TTF)
	require.NoError(t, err)

	face, err := src.Face(16)
	require.NoError(t, err)
	assert.Positive(t, face.Metrics().Height.Ceil())

	_, err = ParseFont([]byte("not a font"))
	assert.Error(t, err)
}

func TestLoadFont(t *testing.T) {
	_, _, err := LoadFont("", "/nonexistent/font.ttf")
	assert.ErrorIs(t, err, ErrNoFont)
}

func TestFindFontFallsBackToBasic(t *testing.T) {
	saved := SystemFontPaths
	SystemFontPaths = nil
	t.Cleanup(func() { SystemFontPaths = saved })

	src, path := FindFont("/nonexistent/font.ttf")
	assert.Empty(t, path)
	assert.Equal(t, BasicFont(), src)
}
