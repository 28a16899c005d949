package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/gizmo/engine/pixfont"
	"golang.org/x/image/font/gofont/goregular"
)

const testFNT = `info face="Blocky" size=8 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=0 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=8 base=6 scaleW=16 scaleH=8 pages=1 packed=0 alphaChnl=1 redChnl=0 greenChnl=0 blueChnl=0
page id=0 file="blocky_0.png"
chars count=3
char id=32   x=0     y=0     width=0     height=0     xoffset=0     yoffset=0     xadvance=3     page=0  chnl=15
char id=65   x=0     y=0     width=3     height=5     xoffset=0     yoffset=1     xadvance=4     page=0  chnl=15
char id=63   x=4     y=0     width=2     height=4     xoffset=0     yoffset=2     xadvance=3     page=0  chnl=15
`

// writeBlocky writes a BMFont whose 'A' is a solid 3x5 block and '?' a 2x4
// block, drawn white on a transparent page.
func writeBlocky(t *testing.T, dir string) string {
	t.Helper()
	page := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	fill := func(r image.Rectangle) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				page.Set(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}
	fill(image.Rect(0, 0, 3, 5))
	fill(image.Rect(4, 0, 6, 4))

	f, err := os.Create(filepath.Join(dir, "blocky_0.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, page); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "blocky.fnt")
	if err := os.WriteFile(path, []byte(testFNT), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBitmapFontLoader(t *testing.T) {
	path := writeBlocky(t, t.TempDir())

	a, err := (&BitmapFontLoader{}).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if a.Name != "Blocky" || a.LineHeight != 8 || a.Baseline != 6 || a.Spacing != 1 {
		t.Errorf("atlas %q line height %d baseline %d spacing %d", a.Name, a.LineHeight, a.Baseline, a.Spacing)
	}
	if len(a.Glyphs) != 3 {
		t.Fatalf("atlas has %d glyphs", len(a.Glyphs))
	}
	if a.Fallback != a.Glyphs['?'] {
		t.Error("fallback should be the '?' glyph")
	}
	if g := a.Glyphs[' ']; g.Width != 2 || g.Height != 0 {
		t.Errorf("space glyph = %+v", g)
	}

	img, err := a.RenderImage("A", false)
	if err != nil {
		t.Fatal(err)
	}
	if img.Rect.Dx() != 3 || img.Rect.Dy() != 8 {
		t.Fatalf("image is %v", img.Rect)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 3; x++ {
			want := uint8(0)
			if y >= 1 && y < 6 {
				want = pixfont.Ink
			}
			if got := img.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}

	// unknown runes draw the '?' block
	w, _, _ := a.Measure("é")
	if w != 2 {
		t.Errorf("fallback width = %d, want 2", w)
	}
}

func TestBitmapFontLoaderMissingPage(t *testing.T) {
	dir := t.TempDir()
	path := writeBlocky(t, dir)
	if err := os.Remove(filepath.Join(dir, "blocky_0.png")); err != nil {
		t.Fatal(err)
	}
	if _, err := (&BitmapFontLoader{}).Load(path); err == nil {
		t.Error("expected an error for a missing page image")
	}
}

func TestTextureLoaderGray(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	src.Set(1, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})

	path := filepath.Join(dir, "page.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	gray, err := (&TextureLoader{}).LoadGray(path)
	if err != nil {
		t.Fatal(err)
	}
	if gray.Pix[0] != 0xff || gray.Pix[1] != 0 {
		t.Errorf("pixels = %v, want [255 0]", gray.Pix)
	}

	if _, err := (&TextureLoader{}).LoadGray(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadGray(missing) error = %v", err)
	}
}

func TestSystemFontLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := (&SystemFontLoader{Size: 16}).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if a.LineHeight < 16 {
		t.Errorf("line height %d for a 16pt face", a.LineHeight)
	}
	for _, r := range "Hiñ?" {
		g, ok := a.Glyphs[r]
		if !ok || g.Height == 0 {
			t.Errorf("glyph %q missing or blank", r)
		}
	}
	if _, err := a.RenderImage("Hi", false); err != nil {
		t.Error(err)
	}

	if _, err := (&SystemFontLoader{Index: 3}).Load(path); err == nil {
		t.Error("expected an error for an out of range face index")
	}
}
