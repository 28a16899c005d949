package loaders

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/gizmo/engine/core"
	"github.com/spaghettifunk/gizmo/engine/pixfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// SystemFontLoader bakes a TrueType or OpenType font into a pixel atlas at a
// fixed size. The atlas carries the same codepoints as the default one.
type SystemFontLoader struct {
	// Size in points. Zero means 12.
	Size float64
	// Index selects the face inside a collection (.ttc).
	Index int
}

func (fl *SystemFontLoader) Load(path string) (*pixfont.Atlas, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := parseFont(fontBytes, fl.Index)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	size := fl.Size
	if size == 0 {
		size = 12
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = path
	}

	a := pixfont.NewAtlasFromFace(fmt.Sprintf("%s %gpt", name, size), face, pixfont.DefaultRunes())
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("system font %s: %w", path, err)
	}
	core.LogInfo("baked system font '%s' (%d glyphs, line height %d)", a.Name, len(a.Glyphs), a.LineHeight)
	return a, nil
}

// parseFont accepts both single fonts and collections.
func parseFont(b []byte, index int) (*sfnt.Font, error) {
	collection, err := opentype.ParseCollection(b)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= collection.NumFonts() {
		return nil, fmt.Errorf("font index %d out of range (%d fonts)", index, collection.NumFonts())
	}
	return collection.Font(index)
}
