package assets

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/gizmo/engine/assets/loaders"
	"github.com/spaghettifunk/gizmo/engine/pixfont"
)

type Loader interface {
	Load(path string) (*pixfont.Atlas, error)
}

type FontFileType int

const (
	FONT_FILE_TYPE_NOT_FOUND FontFileType = iota
	FONT_FILE_TYPE_FNT
	FONT_FILE_TYPE_SYSTEM
)

func determineFontType(path string) FontFileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fnt":
		return FONT_FILE_TYPE_FNT
	case ".ttf", ".otf", ".ttc":
		return FONT_FILE_TYPE_SYSTEM
	default:
		return FONT_FILE_TYPE_NOT_FOUND
	}
}

// LoaderFor picks a loader from the file extension. size is only used by
// system fonts.
func LoaderFor(path string, size float64) (Loader, error) {
	switch determineFontType(path) {
	case FONT_FILE_TYPE_FNT:
		return &loaders.BitmapFontLoader{}, nil
	case FONT_FILE_TYPE_SYSTEM:
		return &loaders.SystemFontLoader{Size: size}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFont, path)
	}
}
