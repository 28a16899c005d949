package pixfont

import (
	"fmt"
	"image"
	"sync"

	"github.com/spaghettifunk/gizmo/engine/core"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	defaultSpacing    = 1
	defaultSpaceWidth = 3
)

/**
 * @brief Placement of a single glyph inside an atlas strip. The glyph
 * occupies columns [AtlasX, AtlasX+Width) and rows [YOffset, YOffset+Height)
 * of the atlas image. Rows are relative to the top of a text line, so a glyph
 * is blitted at the same vertical offset it has in the atlas.
 */
type Glyph struct {
	AtlasX  int
	Width   int
	YOffset int
	Height  int
}

/**
 * @brief A single channel glyph atlas plus the metrics needed to lay out text.
 * An Atlas is immutable once built and safe for concurrent use.
 */
type Atlas struct {
	Name string
	/** @brief One byte per pixel. Non-zero pixels are ink. */
	Image *image.Gray
	/** @brief Glyph placement keyed by codepoint. */
	Glyphs map[rune]Glyph
	/** @brief Drawn for any codepoint missing from Glyphs. */
	Fallback Glyph
	/** @brief Height of one text line in pixels. */
	LineHeight int
	/** @brief Row of the baseline, counted from the top of a line. */
	Baseline int
	/** @brief Pixels between two neighbouring glyphs on a line. */
	Spacing int
}

var (
	defaultAtlasOnce sync.Once
	defaultAtlas     *Atlas
)

// DefaultAtlas returns the built in atlas. It is rasterized once on first use.
func DefaultAtlas() *Atlas {
	defaultAtlasOnce.Do(func() {
		face := newLatin1Face()
		defaultAtlas = NewAtlasFromFace(fmt.Sprintf("basic%dx%d", face.Advance, face.Height), face, DefaultRunes())
		core.LogDebug("pixfont: built %s atlas, %d glyphs, %dx%d pixels",
			defaultAtlas.Name, len(defaultAtlas.Glyphs),
			defaultAtlas.Image.Rect.Dx(), defaultAtlas.Image.Rect.Dy())
	})
	return defaultAtlas
}

// SupportedRune reports whether the default atlas has a glyph for r.
func SupportedRune(r rune) bool {
	_, ok := DefaultAtlas().Glyphs[r]
	return ok
}

// DefaultRunes lists every codepoint carried by the default atlas.
func DefaultRunes() []rune {
	runes := make([]rune, 0, 0x7f-0x20+len([]rune(latinExtras)))
	for r := rune(0x20); r <= 0x7e; r++ {
		runes = append(runes, r)
	}
	for _, r := range latinExtras {
		runes = append(runes, r)
	}
	return runes
}

// cell is one rasterized glyph before it is packed into the strip.
type cell struct {
	r      rune
	img    *image.Gray
	ink    image.Rectangle
	hasInk bool
}

// rasterize draws r from face into a cell one glyph wide and one line high.
// Coverage below half is dropped so anti-aliased faces stay crisp.
func rasterize(face font.Face, r rune, ascent, lineHeight int) (cell, bool) {
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, ascent), r)
	if !ok {
		return cell{}, false
	}
	img := image.NewGray(image.Rect(dr.Min.X, 0, max(dr.Max.X, dr.Min.X), lineHeight))
	draw.DrawMask(img, dr.Intersect(img.Rect), image.White, image.Point{}, mask, maskp, draw.Over)
	for i, v := range img.Pix {
		if v < 0x80 {
			img.Pix[i] = 0
		} else {
			img.Pix[i] = 0xff
		}
	}

	c := cell{r: r, img: img}
	c.ink, c.hasInk = inkBounds(img)
	return c, true
}

func inkBounds(img *image.Gray) (image.Rectangle, bool) {
	b := img.Bounds()
	ink := image.Rectangle{Min: b.Max, Max: b.Min}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)] == 0 {
				continue
			}
			found = true
			ink.Min.X = min(ink.Min.X, x)
			ink.Min.Y = min(ink.Min.Y, y)
			ink.Max.X = max(ink.Max.X, x+1)
			ink.Max.Y = max(ink.Max.Y, y+1)
		}
	}
	return ink, found
}

// missingBox draws a hollow rectangle for atlases whose face has no
// replacement character.
func missingBox(ascent, lineHeight int) cell {
	w := 5
	top := max(ascent-9, 0)
	img := image.NewGray(image.Rect(0, 0, w, lineHeight))
	for y := top; y < ascent; y++ {
		for x := 0; x < w; x++ {
			if y == top || y == ascent-1 || x == 0 || x == w-1 {
				img.Pix[img.PixOffset(x, y)] = 0xff
			}
		}
	}
	c := cell{r: 0xfffd, img: img}
	c.ink, c.hasInk = inkBounds(img)
	return c
}

/**
 * @brief Rasterizes runes from face into a single strip atlas. Each glyph is
 * trimmed to its inked columns and blank glyphs (space) get defaultSpaceWidth.
 * Runes the face cannot draw are left out and fall back at render time.
 *
 * @param name A label for logs.
 * @param face Any font face. Bitmap faces give an exact copy of their pixels.
 * @param runes The codepoints to carry.
 * @return The new atlas.
 */
func NewAtlasFromFace(name string, face font.Face, runes []rune) *Atlas {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	cells := make([]cell, 0, len(runes)+1)
	for _, r := range runes {
		c, ok := rasterize(face, r, ascent, lineHeight)
		if !ok {
			core.LogWarn("pixfont: face has no glyph for %q, using fallback", r)
			continue
		}
		cells = append(cells, c)
	}
	fallback, ok := rasterize(face, 0xfffd, ascent, lineHeight)
	if !ok || !fallback.hasInk {
		fallback = missingBox(ascent, lineHeight)
	}
	cells = append(cells, fallback)

	stripWidth := 0
	for _, c := range cells {
		stripWidth += cellWidth(c)
	}

	a := &Atlas{
		Name:       name,
		Image:      image.NewGray(image.Rect(0, 0, stripWidth, lineHeight)),
		Glyphs:     make(map[rune]Glyph, len(cells)),
		LineHeight: lineHeight,
		Baseline:   ascent,
		Spacing:    defaultSpacing,
	}

	x := 0
	for i, c := range cells {
		g := Glyph{AtlasX: x, Width: cellWidth(c)}
		if c.hasInk {
			g.YOffset = c.ink.Min.Y
			g.Height = c.ink.Dy()
			dst := image.Rect(x, 0, x+g.Width, lineHeight)
			draw.Draw(a.Image, dst, c.img, image.Point{X: c.ink.Min.X}, draw.Src)
		}
		x += g.Width

		if i == len(cells)-1 {
			a.Fallback = g
			continue
		}
		a.Glyphs[c.r] = g
	}
	return a
}

func cellWidth(c cell) int {
	if !c.hasInk {
		return defaultSpaceWidth
	}
	return c.ink.Dx()
}

// Glyph returns the placement used for r, which is the fallback glyph when
// the atlas does not carry r.
func (a *Atlas) Glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	return a.Fallback
}

// Validate checks that every glyph lies inside the atlas image and inside
// one line.
func (a *Atlas) Validate() error {
	if a == nil || a.Image == nil {
		return fmt.Errorf("%w: no image", ErrInvalidAtlas)
	}
	if a.LineHeight <= 0 {
		return fmt.Errorf("%w: line height %d", ErrInvalidAtlas, a.LineHeight)
	}
	if a.Spacing < 0 {
		return fmt.Errorf("%w: spacing %d", ErrInvalidAtlas, a.Spacing)
	}
	check := func(name string, g Glyph) error {
		b := a.Image.Bounds()
		if g.Width < 0 || g.Height < 0 || g.YOffset < 0 {
			return fmt.Errorf("%w: glyph %s has negative metrics", ErrInvalidAtlas, name)
		}
		if g.AtlasX < 0 || g.AtlasX+g.Width > b.Dx() {
			return fmt.Errorf("%w: glyph %s columns %d..%d outside %d", ErrInvalidAtlas, name, g.AtlasX, g.AtlasX+g.Width, b.Dx())
		}
		if g.Height > 0 && (g.YOffset+g.Height > b.Dy() || g.YOffset+g.Height > a.LineHeight) {
			return fmt.Errorf("%w: glyph %s rows %d..%d outside line", ErrInvalidAtlas, name, g.YOffset, g.YOffset+g.Height)
		}
		return nil
	}
	for r, g := range a.Glyphs {
		if err := check(fmt.Sprintf("%q", r), g); err != nil {
			return err
		}
	}
	return check("fallback", a.Fallback)
}
