// Package pixfont measures and renders short UTF-8 strings into single
// channel 8-bit images using a small embedded pixel font.
package pixfont

import (
	"fmt"
	"image"
	"unicode/utf8"
)

// MaxStringLength is the longest input, in bytes, accepted by Measure and Render.
const MaxStringLength = 2048

// Ink is the value written for every foreground pixel.
const Ink = 0xff

// Measure returns the smallest image size that fits s rendered with the default atlas.
func Measure(s string) (w, h int, err error) {
	return DefaultAtlas().Measure(s)
}

// Render draws s with the default atlas into img, a w*h row-major buffer.
func Render(s string, img []byte, w, h int, flip bool) error {
	return DefaultAtlas().Render(s, img, w, h, flip)
}

// RenderImage measures s and renders it into a freshly allocated image.
func RenderImage(s string, flip bool) (*image.Gray, error) {
	return DefaultAtlas().RenderImage(s, flip)
}

func checkString(s string) error {
	if len(s) == 0 {
		return ErrEmptyString
	}
	if len(s) > MaxStringLength {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	return nil
}

func isContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xbf
}

/**
 * @brief Walks s one codepoint at a time and places each glyph on its line.
 * Glyphs on a line are separated by Spacing pixels with none after the last
 * one. A stray continuation byte is skipped; any other undecodable byte is
 * drawn as the fallback glyph.
 *
 * @param s The UTF-8 text.
 * @param place Called with each glyph and its top-left pixel. May be nil.
 * @return The widest line in pixels (at least 1) and the number of lines.
 */
func (a *Atlas) layout(s string, place func(g Glyph, x, y int)) (width, lines int) {
	lines = 1
	x, n := 0, 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		lead := s[i]
		i += size

		if r == '\n' {
			lines++
			x, n = 0, 0
			continue
		}
		if r == utf8.RuneError && size == 1 && isContinuation(lead) {
			continue
		}

		g := a.Glyph(r)
		if n > 0 {
			x += a.Spacing
		}
		if place != nil {
			place(g, x, (lines-1)*a.LineHeight)
		}
		x += g.Width
		n++
		width = max(width, x)
	}
	return max(width, 1), lines
}

/**
 * @brief Returns the image dimensions needed to hold all of s.
 *
 * @param s The text. Must be non-empty and at most MaxStringLength bytes.
 * @return Width is the widest line, height is one LineHeight per line.
 */
func (a *Atlas) Measure(s string) (w, h int, err error) {
	if err := checkString(s); err != nil {
		return 0, 0, err
	}
	width, lines := a.layout(s, nil)
	return width, lines * a.LineHeight, nil
}

/**
 * @brief Draws s into img, a row-major w*h buffer with one byte per pixel.
 * Ink pixels are set to 0xff and every other byte is left untouched. Glyphs
 * that fall outside w*h are clipped. When flip is set, row y is written to
 * row h-1-y. Nothing is written if an error is returned.
 */
func (a *Atlas) Render(s string, img []byte, w, h int, flip bool) error {
	if err := checkString(s); err != nil {
		return err
	}
	if img == nil {
		return ErrNilImage
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if len(img) < w*h {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrImageTooSmall, len(img), w*h)
	}

	a.layout(s, func(g Glyph, x, y int) {
		a.blit(g, img, w, h, x, y, flip)
	})
	return nil
}

func (a *Atlas) blit(g Glyph, img []byte, w, h, x, y int, flip bool) {
	origin := a.Image.Rect.Min
	for row := g.YOffset; row < g.YOffset+g.Height; row++ {
		dy := y + row
		if dy < 0 || dy >= h {
			continue
		}
		if flip {
			dy = h - 1 - dy
		}
		src := a.Image.PixOffset(origin.X+g.AtlasX, origin.Y+row)
		for col := 0; col < g.Width; col++ {
			dx := x + col
			if dx < 0 || dx >= w {
				continue
			}
			if a.Image.Pix[src+col] != 0 {
				img[dy*w+dx] = Ink
			}
		}
	}
}

// RenderImage measures s and renders it into a new image of exactly that size.
func (a *Atlas) RenderImage(s string, flip bool) (*image.Gray, error) {
	w, h, err := a.Measure(s)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	if err := a.Render(s, img.Pix, w, h, flip); err != nil {
		return nil, err
	}
	return img, nil
}
