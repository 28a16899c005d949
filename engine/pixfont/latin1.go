package pixfont

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

// latinExtras are the two byte UTF-8 codepoints carried by the default
// atlas on top of printable ASCII, in codepoint order.
const latinExtras = "¡¿ÀÁÂÄÇÈÉÊËÌÍÎÏÑÒÓÔÖÙÚÛÜßàáâäçèéêëìíîïñòóôöùúûü"

const (
	latinCellWidth  = 6
	latinCellHeight = 13
)

// latinGlyphData has one 6x13 bitmap per rune of latinExtras, in the same
// order. Each row is a byte with bit 5 as the leftmost pixel. The shapes are
// the basicfont.Face7x13 letters with the accent above (capitals are one row
// shorter to make room) or the cedilla below.
var latinGlyphData = [...]byte{
	// 0xa1 '¡'
	0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04,
	// 0xbf '¿'
	0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x08, 0x08, 0x10, 0x20, 0x21, 0x21, 0x1e,
	// 0xc0 'À'
	0x08, 0x04, 0x00, 0x0c, 0x12, 0x21, 0x21, 0x3f, 0x21, 0x21, 0x21, 0x00, 0x00,
	// 0xc1 'Á'
	0x04, 0x08, 0x00, 0x0c, 0x12, 0x21, 0x21, 0x3f, 0x21, 0x21, 0x21, 0x00, 0x00,
	// 0xc2 'Â'
	0x0c, 0x12, 0x00, 0x0c, 0x12, 0x21, 0x21, 0x3f, 0x21, 0x21, 0x21, 0x00, 0x00,
	// 0xc4 'Ä'
	0x00, 0x12, 0x00, 0x0c, 0x12, 0x21, 0x21, 0x3f, 0x21, 0x21, 0x21, 0x00, 0x00,
	// 0xc7 'Ç'
	0x00, 0x00, 0x1e, 0x21, 0x20, 0x20, 0x20, 0x20, 0x20, 0x21, 0x1e, 0x04, 0x0c,
	// 0xc8 'È'
	0x08, 0x04, 0x00, 0x3f, 0x20, 0x20, 0x20, 0x3c, 0x20, 0x20, 0x3f, 0x00, 0x00,
	// 0xc9 'É'
	0x04, 0x08, 0x00, 0x3f, 0x20, 0x20, 0x20, 0x3c, 0x20, 0x20, 0x3f, 0x00, 0x00,
	// 0xca 'Ê'
	0x0c, 0x12, 0x00, 0x3f, 0x20, 0x20, 0x20, 0x3c, 0x20, 0x20, 0x3f, 0x00, 0x00,
	// 0xcb 'Ë'
	0x00, 0x12, 0x00, 0x3f, 0x20, 0x20, 0x20, 0x3c, 0x20, 0x20, 0x3f, 0x00, 0x00,
	// 0xcc 'Ì'
	0x08, 0x04, 0x00, 0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xcd 'Í'
	0x04, 0x08, 0x00, 0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xce 'Î'
	0x0c, 0x12, 0x00, 0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xcf 'Ï'
	0x00, 0x12, 0x00, 0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xd1 'Ñ'
	0x19, 0x26, 0x00, 0x21, 0x21, 0x31, 0x29, 0x25, 0x23, 0x21, 0x21, 0x00, 0x00,
	// 0xd2 'Ò'
	0x08, 0x04, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xd3 'Ó'
	0x04, 0x08, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xd4 'Ô'
	0x0c, 0x12, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xd6 'Ö'
	0x00, 0x12, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xd9 'Ù'
	0x08, 0x04, 0x00, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xda 'Ú'
	0x04, 0x08, 0x00, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xdb 'Û'
	0x0c, 0x12, 0x00, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xdc 'Ü'
	0x00, 0x12, 0x00, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xdf 'ß'
	0x00, 0x00, 0x1c, 0x22, 0x22, 0x24, 0x2c, 0x22, 0x21, 0x21, 0x2e, 0x00, 0x00,
	// 0xe0 'à'
	0x00, 0x00, 0x08, 0x04, 0x00, 0x1e, 0x01, 0x1f, 0x21, 0x23, 0x1d, 0x00, 0x00,
	// 0xe1 'á'
	0x00, 0x00, 0x04, 0x08, 0x00, 0x1e, 0x01, 0x1f, 0x21, 0x23, 0x1d, 0x00, 0x00,
	// 0xe2 'â'
	0x00, 0x00, 0x0c, 0x12, 0x00, 0x1e, 0x01, 0x1f, 0x21, 0x23, 0x1d, 0x00, 0x00,
	// 0xe4 'ä'
	0x00, 0x00, 0x00, 0x12, 0x00, 0x1e, 0x01, 0x1f, 0x21, 0x23, 0x1d, 0x00, 0x00,
	// 0xe7 'ç'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x1e, 0x21, 0x20, 0x20, 0x21, 0x1e, 0x04, 0x0c,
	// 0xe8 'è'
	0x00, 0x00, 0x08, 0x04, 0x00, 0x1e, 0x21, 0x3f, 0x20, 0x21, 0x1e, 0x00, 0x00,
	// 0xe9 'é'
	0x00, 0x00, 0x04, 0x08, 0x00, 0x1e, 0x21, 0x3f, 0x20, 0x21, 0x1e, 0x00, 0x00,
	// 0xea 'ê'
	0x00, 0x00, 0x0c, 0x12, 0x00, 0x1e, 0x21, 0x3f, 0x20, 0x21, 0x1e, 0x00, 0x00,
	// 0xeb 'ë'
	0x00, 0x00, 0x00, 0x12, 0x00, 0x1e, 0x21, 0x3f, 0x20, 0x21, 0x1e, 0x00, 0x00,
	// 0xec 'ì'
	0x00, 0x00, 0x08, 0x04, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xed 'í'
	0x00, 0x00, 0x04, 0x08, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xee 'î'
	0x00, 0x00, 0x0c, 0x12, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xef 'ï'
	0x00, 0x00, 0x00, 0x12, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x1f, 0x00, 0x00,
	// 0xf1 'ñ'
	0x00, 0x00, 0x19, 0x26, 0x00, 0x2e, 0x31, 0x21, 0x21, 0x21, 0x21, 0x00, 0x00,
	// 0xf2 'ò'
	0x00, 0x00, 0x08, 0x04, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xf3 'ó'
	0x00, 0x00, 0x04, 0x08, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xf4 'ô'
	0x00, 0x00, 0x0c, 0x12, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xf6 'ö'
	0x00, 0x00, 0x00, 0x12, 0x00, 0x1e, 0x21, 0x21, 0x21, 0x21, 0x1e, 0x00, 0x00,
	// 0xf9 'ù'
	0x00, 0x00, 0x08, 0x04, 0x00, 0x21, 0x21, 0x21, 0x21, 0x23, 0x1d, 0x00, 0x00,
	// 0xfa 'ú'
	0x00, 0x00, 0x04, 0x08, 0x00, 0x21, 0x21, 0x21, 0x21, 0x23, 0x1d, 0x00, 0x00,
	// 0xfb 'û'
	0x00, 0x00, 0x0c, 0x12, 0x00, 0x21, 0x21, 0x21, 0x21, 0x23, 0x1d, 0x00, 0x00,
	// 0xfc 'ü'
	0x00, 0x00, 0x00, 0x12, 0x00, 0x21, 0x21, 0x21, 0x21, 0x23, 0x1d, 0x00, 0x00,
}

/**
 * @brief Returns basicfont.Face7x13 with the latinExtras glyphs appended to
 * its mask. The ASCII glyphs and the replacement character are unchanged.
 */
func newLatin1Face() *basicfont.Face {
	base := basicfont.Face7x13
	baseBounds := base.Mask.Bounds()
	baseGlyphs := baseBounds.Dy() / base.Height
	extras := []rune(latinExtras)

	mask := image.NewAlpha(image.Rect(0, 0, baseBounds.Dx(), (baseGlyphs+len(extras))*base.Height))
	draw.Draw(mask, baseBounds, base.Mask, baseBounds.Min, draw.Src)

	ink := color.Alpha{A: 0xff}
	for i := range extras {
		top := (baseGlyphs + i) * base.Height
		for row := 0; row < latinCellHeight; row++ {
			b := latinGlyphData[i*latinCellHeight+row]
			for col := 0; col < latinCellWidth; col++ {
				if b&(0x20>>col) != 0 {
					mask.SetAlpha(col, top+row, ink)
				}
			}
		}
	}

	// one range per run of consecutive codepoints
	ranges := append([]basicfont.Range(nil), base.Ranges...)
	for i, r := range extras {
		last := &ranges[len(ranges)-1]
		if i > 0 && last.High == r {
			last.High++
			continue
		}
		ranges = append(ranges, basicfont.Range{Low: r, High: r + 1, Offset: baseGlyphs + i})
	}

	face := *base
	face.Mask = mask
	face.Ranges = ranges
	return &face
}
