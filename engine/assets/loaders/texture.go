package loaders

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// TextureLoader decodes atlas page images into single channel images.
type TextureLoader struct{}

/**
 * @brief Decodes the image at path and converts it to luma. Colour is
 * premultiplied by alpha first, so white glyphs on a transparent background
 * and white glyphs on an opaque black background give the same result.
 */
func (tl *TextureLoader) LoadGray(path string) (*image.Gray, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file) // Decodes the image (e.g., PNG)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	b := img.Bounds()
	if gray, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return gray, nil
	}

	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Rect, img, b.Min, draw.Src)
	return gray, nil
}
