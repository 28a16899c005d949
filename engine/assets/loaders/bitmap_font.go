package loaders

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/fzipp/bmfont"
	"github.com/spaghettifunk/gizmo/engine/core"
	"github.com/spaghettifunk/gizmo/engine/pixfont"
	"golang.org/x/image/draw"
)

// BitmapFontLoader turns an AngelCode BMFont descriptor (.fnt) and its page
// images into a pixfont.Atlas.
type BitmapFontLoader struct {
	// Spacing between glyphs in the resulting atlas. Zero means 1.
	Spacing int
}

func (fl *BitmapFontLoader) Load(path string) (*pixfont.Atlas, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading bitmap font %s: %w", path, err)
	}
	d := font.Descriptor

	textures := &TextureLoader{}
	pages := make(map[int]*image.Gray, len(d.Pages))
	for _, p := range d.Pages {
		page, err := textures.LoadGray(filepath.Join(filepath.Dir(path), p.File))
		if err != nil {
			return nil, fmt.Errorf("loading page %d of %s: %w", p.ID, path, err)
		}
		pages[int(p.ID)] = page
	}

	spacing := fl.Spacing
	if spacing == 0 {
		spacing = 1
	}
	lineHeight := int(d.Common.LineHeight)

	// Repack every char into a strip one line high, keeping its offset from
	// the top of the line.
	type placed struct {
		r     rune
		page  *image.Gray
		src   image.Rectangle
		glyph pixfont.Glyph
	}
	chars := make([]placed, 0, len(d.Chars))
	stripWidth := 0
	for _, g := range d.Chars {
		page, ok := pages[int(g.Page)]
		if !ok {
			return nil, fmt.Errorf("%w: char %d refers to missing page %d", pixfont.ErrInvalidAtlas, g.ID, g.Page)
		}
		src := image.Rect(int(g.X), int(g.Y), int(g.X)+int(g.Width), int(g.Y)+int(g.Height))
		yoff := int(g.YOffset)
		if yoff < 0 {
			src.Min.Y -= yoff
			yoff = 0
		}
		if yoff+src.Dy() > lineHeight {
			src.Max.Y = src.Min.Y + max(lineHeight-yoff, 0)
		}
		src = src.Intersect(page.Rect)

		width := src.Dx()
		if width == 0 {
			// blank glyphs such as space only carry an advance
			width = max(int(g.XAdvance)-spacing, 1)
		}
		glyph := pixfont.Glyph{AtlasX: stripWidth, Width: width}
		if !src.Empty() {
			glyph.YOffset = yoff
			glyph.Height = src.Dy()
		}
		chars = append(chars, placed{r: rune(g.ID), page: page, src: src, glyph: glyph})
		stripWidth += width
	}

	a := &pixfont.Atlas{
		Name:       d.Info.Face,
		Image:      image.NewGray(image.Rect(0, 0, max(stripWidth, 1), max(lineHeight, 1))),
		Glyphs:     make(map[rune]pixfont.Glyph, len(chars)),
		LineHeight: lineHeight,
		Baseline:   int(d.Common.Base),
		Spacing:    spacing,
	}
	for _, c := range chars {
		if c.glyph.Height > 0 {
			dst := image.Rect(c.glyph.AtlasX, c.glyph.YOffset, c.glyph.AtlasX+c.src.Dx(), c.glyph.YOffset+c.src.Dy())
			draw.Draw(a.Image, dst, c.page, c.src.Min, draw.Src)
		}
		a.Glyphs[c.r] = c.glyph
	}
	a.Fallback = fallbackGlyph(a)

	if len(d.Kerning) > 0 {
		core.LogDebug("bitmap font %s: ignoring %d kerning pairs", path, len(d.Kerning))
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("bitmap font %s: %w", path, err)
	}
	core.LogInfo("loaded bitmap font '%s' (%d glyphs, line height %d) from %s", a.Name, len(a.Glyphs), a.LineHeight, path)
	return a, nil
}

// fallbackGlyph picks the replacement character, then '?', then a blank cell.
func fallbackGlyph(a *pixfont.Atlas) pixfont.Glyph {
	for _, r := range []rune{0xfffd, '?'} {
		if g, ok := a.Glyphs[r]; ok {
			return g
		}
	}
	return pixfont.Glyph{Width: min(max(a.LineHeight/2, 1), a.Image.Rect.Dx())}
}
