package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/f3rmion/zitie/internal/grid"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	colorPaper   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorInk     = color.RGBA{0x0a, 0x0a, 0x0a, 0xff}
	colorPinyin  = color.RGBA{0x73, 0x73, 0x73, 0xff}
	colorCaption = color.RGBA{0xa3, 0xa3, 0xa3, 0xff}
	colorGrid    = color.RGBA{0xd4, 0xd4, 0xd4, 0xff}
)

// Image renders layouts onto a PNG page. The grid spans the page width
// between the margins; the page grows downwards when the content does not fit.
type Image struct {
	Width  int
	Height int
	Margin int
	Glyphs FontSource // Grid characters and the header label
	Latin  FontSource // Pinyin and the header caption
}

// metrics are the pixel sizes derived from the page width and column count.
type metrics struct {
	cell  int // Side of a character cell
	band  int // Height of a pinyin band
	gap   int // Space above each poem line
	left  int // X of the first column
	top   int // Y of the first line
	width int // Page width
}

func (r Image) metrics(columns int) metrics {
	inner := r.Width - 2*r.Margin
	cell := inner / columns
	return metrics{
		cell:  cell,
		band:  cell * 7 / 10,
		gap:   cell / 5,
		left:  r.Margin + (inner-cell*columns)/2,
		top:   r.Margin,
		width: r.Width,
	}
}

// contentHeight returns the pixel height the lines of l take up.
func (m metrics) contentHeight(l grid.Layout) int {
	h := 0
	for _, line := range l.Lines {
		h += m.lineHeight(line)
	}
	return h
}

func (m metrics) lineHeight(line grid.Line) int {
	switch {
	case line.Kind == grid.KindTranslationHeader:
		return m.gap + m.cell
	case line.Phonetic != nil:
		return m.gap + m.band + m.cell
	default:
		return m.cell
	}
}

// Render draws l onto a new page image.
func (r Image) Render(l grid.Layout) (*image.RGBA, error) {
	if l.Columns <= 0 {
		return nil, fmt.Errorf("layout has %d columns", l.Columns)
	}
	m := r.metrics(l.Columns)
	if m.cell <= 0 {
		return nil, fmt.Errorf("page width %d leaves no room for %d columns", r.Width, l.Columns)
	}

	glyphs, err := r.face(r.Glyphs, float64(m.cell)*0.7)
	if err != nil {
		return nil, fmt.Errorf("glyph font: %w", err)
	}
	latin, err := r.face(r.Latin, float64(m.band)*0.55)
	if err != nil {
		return nil, fmt.Errorf("pinyin font: %w", err)
	}
	small, err := r.face(r.Latin, float64(m.cell)*0.3)
	if err != nil {
		return nil, fmt.Errorf("caption font: %w", err)
	}

	height := max(r.Height, m.top+m.contentHeight(l)+r.Margin)
	img := image.NewRGBA(image.Rect(0, 0, r.Width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{colorPaper}, image.Point{}, draw.Src)

	y := m.top
	for _, line := range l.Lines {
		switch {
		case line.Kind == grid.KindTranslationHeader:
			y += m.gap
			row := image.Rect(m.left, y, m.left+m.cell*l.Columns, y+m.cell)
			drawText(img, glyphs, line.Header.Label, colorInk, row, alignStart)
			drawText(img, small, line.Header.Caption, colorCaption, row, alignEnd)
			y += m.cell
		case line.Phonetic != nil:
			y += m.gap
			r.drawPinyin(img, latin, m, *line.Phonetic, y, l.Border)
			y += m.band
			r.drawCells(img, glyphs, m, line.Cells, y, l.Border)
			y += m.cell
		default:
			r.drawCells(img, glyphs, m, line.Cells, y, l.Border)
			y += m.cell
		}
	}

	return img, nil
}

// WritePNG renders l and encodes it as PNG.
func (r Image) WritePNG(w io.Writer, l grid.Layout) error {
	img, err := r.Render(l)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (r Image) face(src FontSource, size float64) (font.Face, error) {
	if src == nil {
		src = BasicFont()
	}
	return src.Face(size)
}

func (r Image) drawCells(img *image.RGBA, face font.Face, m metrics, cells grid.Row, y int, border bool) {
	for i, c := range cells {
		x := m.left + i*m.cell
		rect := image.Rect(x, y, x+m.cell+1, y+m.cell+1)
		if border {
			strokeRect(img, rect, colorGrid)
		}
		if !c.Empty() {
			drawText(img, face, string(c), colorInk, image.Rect(x, y, x+m.cell, y+m.cell), alignMiddle)
		}
	}
}

// drawPinyin draws the four-line pinyin guide when borders are on. Hidden
// rows keep their band but draw no tokens.
func (r Image) drawPinyin(img *image.RGBA, face font.Face, m metrics, p grid.PhoneticRow, y int, border bool) {
	x0 := m.left
	x1 := m.left + m.cell*len(p.Slots)
	if border {
		hline(img, x0, x1, y, colorGrid)
		dashedHLine(img, x0, x1, y+m.band/4, colorGrid)
		dashedHLine(img, x0, x1, y+m.band*3/4, colorGrid)
	}
	if !p.Visible {
		return
	}
	for i, token := range p.Slots {
		if token == "" {
			continue
		}
		x := m.left + i*m.cell
		drawText(img, face, token, colorPinyin, image.Rect(x, y, x+m.cell, y+m.band), alignMiddle)
	}
}

type textAlign int

const (
	alignMiddle textAlign = iota
	alignStart
	alignEnd
)

// drawText draws s inside box, vertically centered on the face metrics.
func drawText(img *image.RGBA, face font.Face, s string, c color.Color, box image.Rectangle, align textAlign) {
	if s == "" {
		return
	}
	advance := font.MeasureString(face, s).Ceil()
	fm := face.Metrics()
	ascent, descent := fm.Ascent.Ceil(), fm.Descent.Ceil()

	var x int
	switch align {
	case alignStart:
		x = box.Min.X
	case alignEnd:
		x = box.Max.X - advance
	default:
		x = box.Min.X + (box.Dx()-advance)/2
	}
	baseline := box.Min.Y + (box.Dy()+ascent-descent)/2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	hline(img, r.Min.X, r.Max.X, r.Min.Y, c)
	hline(img, r.Min.X, r.Max.X, r.Max.Y-1, c)
	vline(img, r.Min.X, r.Min.Y, r.Max.Y, c)
	vline(img, r.Max.X-1, r.Min.Y, r.Max.Y, c)
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x < x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func dashedHLine(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	const dash, space = 6, 4
	for x := x0; x < x1; x += dash + space {
		hline(img, x, min(x+dash, x1), y, c)
	}
}
