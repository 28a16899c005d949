package pixfont

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter exposes the atlas as a tinyfont.Fonter so it can be drawn with
// tinyfont.WriteLine onto any drivers.Displayer. The y coordinate passed to
// tinyfont is the baseline.
func (a *Atlas) Fonter() tinyfont.Fonter {
	return &atlasFont{atlas: a}
}

type atlasFont struct {
	atlas *Atlas
}

type atlasGlyph struct {
	atlas *Atlas
	r     rune
	g     Glyph
}

func (f *atlasFont) GetYAdvance() uint8 { return uint8(f.atlas.LineHeight) }

func (f *atlasFont) GetGlyph(r rune) tinyfont.Glypher {
	return &atlasGlyph{atlas: f.atlas, r: r, g: f.atlas.Glyph(r)}
}

func (g *atlasGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	img := g.atlas.Image
	origin := img.Rect.Min
	top := y - int16(g.atlas.Baseline)
	for row := g.g.YOffset; row < g.g.YOffset+g.g.Height; row++ {
		src := img.PixOffset(origin.X+g.g.AtlasX, origin.Y+row)
		for col := 0; col < g.g.Width; col++ {
			if img.Pix[src+col] == 0 {
				continue
			}
			display.SetPixel(x+int16(col), top+int16(row), c)
		}
	}
}

func (g *atlasGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(g.g.Width),
		Height:   uint8(g.g.Height),
		XAdvance: uint8(g.g.Width + g.atlas.Spacing),
		XOffset:  0,
		YOffset:  int8(g.g.YOffset - g.atlas.Baseline),
	}
}
