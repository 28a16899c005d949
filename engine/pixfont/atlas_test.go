package pixfont

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestDefaultAtlasCoverage(t *testing.T) {
	a := DefaultAtlas()
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if a != DefaultAtlas() {
		t.Error("DefaultAtlas should be built once")
	}
	if a.LineHeight != 13 || a.Baseline != 11 {
		t.Errorf("line height %d baseline %d, want 13 and 11", a.LineHeight, a.Baseline)
	}

	for r := rune(0x20); r <= 0x7e; r++ {
		if _, ok := a.Glyphs[r]; !ok {
			t.Errorf("missing ASCII glyph %q", r)
		}
	}
	for _, r := range latinExtras {
		g, ok := a.Glyphs[r]
		if !ok {
			t.Errorf("missing glyph %q", r)
			continue
		}
		if g.Width == 0 || g.Height == 0 {
			t.Errorf("glyph %q has no ink", r)
		}
	}
	if len(a.Glyphs) != 0x7f-0x20+len([]rune(latinExtras)) {
		t.Errorf("atlas has %d glyphs", len(a.Glyphs))
	}
}

func TestSupportedRune(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{' ', true},
		{'~', true},
		{'é', true},
		{'ß', true},
		{'\n', false},
		{0x7f, false},
		{'ã', false},
		{'€', false},
		{'☃', false},
	}
	for _, tt := range tests {
		if got := SupportedRune(tt.r); got != tt.want {
			t.Errorf("SupportedRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
		_, inAtlas := DefaultAtlas().Glyphs[tt.r]
		if inAtlas != tt.want {
			t.Errorf("atlas has %q = %v, want %v", tt.r, inAtlas, tt.want)
		}
	}
}

func TestLatinGlyphData(t *testing.T) {
	extras := []rune(latinExtras)
	if len(latinGlyphData) != len(extras)*latinCellHeight {
		t.Fatalf("%d bytes of glyph data for %d runes", len(latinGlyphData), len(extras))
	}
	for i, b := range latinGlyphData {
		if b&^0x3f != 0 {
			t.Errorf("rune %q row %d sets pixels past column 5", extras[i/latinCellHeight], i%latinCellHeight)
		}
	}
	for i := 1; i < len(extras); i++ {
		if extras[i] <= extras[i-1] {
			t.Errorf("%q is out of codepoint order", extras[i])
		}
	}
}

func TestLatinGlyphPlacement(t *testing.T) {
	a := DefaultAtlas()
	tests := []struct {
		r       rune
		yOffset int
		height  int
		width   int
	}{
		{'E', 2, 9, 6},
		{'É', 0, 11, 6},
		{'e', 5, 6, 6},
		{'é', 2, 9, 6},
		{'ë', 3, 8, 6},
		{'Ç', 2, 11, 6},
		{'¡', 4, 9, 1},
		{'ß', 2, 9, 6},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			g, ok := a.Glyphs[tt.r]
			if !ok {
				t.Fatalf("atlas has no %q", tt.r)
			}
			if g.YOffset != tt.yOffset || g.Height != tt.height || g.Width != tt.width {
				t.Errorf("glyph = %+v, want yoffset %d height %d width %d", g, tt.yOffset, tt.height, tt.width)
			}
		})
	}

	// the acute accent of 'é' is a single pixel at column 3 on row 2
	g := a.Glyph('é')
	if a.Image.GrayAt(g.AtlasX+3, 2).Y == 0 || a.Image.GrayAt(g.AtlasX+2, 2).Y != 0 {
		t.Error("'é' accent is not where expected")
	}
}

func TestGlyphsAreTrimmed(t *testing.T) {
	a := DefaultAtlas()
	for _, r := range []rune{'H', 'i', 'W', '|', 'Ö'} {
		g := a.Glyph(r)
		left, right := false, false
		for row := g.YOffset; row < g.YOffset+g.Height; row++ {
			left = left || a.Image.GrayAt(g.AtlasX, row).Y != 0
			right = right || a.Image.GrayAt(g.AtlasX+g.Width-1, row).Y != 0
		}
		if !left || !right {
			t.Errorf("glyph %q is not trimmed to its ink", r)
		}
	}

	if w := a.Glyph(' ').Width; w != defaultSpaceWidth {
		t.Errorf("space width = %d, want %d", w, defaultSpaceWidth)
	}
	if a.Glyph('i').Width >= a.Glyph('W').Width {
		t.Error("glyphs should be proportional")
	}
}

func TestFallbackGlyph(t *testing.T) {
	a := DefaultAtlas()
	if a.Fallback.Width == 0 || a.Fallback.Height == 0 {
		t.Fatal("fallback glyph has no ink")
	}
	if a.Glyph('☃') != a.Fallback {
		t.Error("unsupported rune should map to the fallback glyph")
	}

	img, err := RenderImage("☃", false)
	if err != nil {
		t.Fatal(err)
	}
	if img.Rect.Dx() != a.Fallback.Width {
		t.Errorf("fallback image width = %d", img.Rect.Dx())
	}
}

func TestMissingBox(t *testing.T) {
	c := missingBox(11, 13)
	if !c.hasInk || c.ink != image.Rect(0, 2, 5, 11) {
		t.Errorf("ink = %v", c.ink)
	}
	// hollow inside
	if c.img.GrayAt(2, 5).Y != 0 {
		t.Error("box should be hollow")
	}
}

func TestValidate(t *testing.T) {
	good := DefaultAtlas()
	tests := []struct {
		name  string
		atlas *Atlas
	}{
		{"nil", nil},
		{"no image", &Atlas{LineHeight: 13}},
		{"no line height", &Atlas{Image: good.Image}},
		{"glyph past the edge", &Atlas{
			Image:      good.Image,
			LineHeight: good.LineHeight,
			Glyphs:     map[rune]Glyph{'x': {AtlasX: good.Image.Rect.Dx() - 1, Width: 4, Height: 2}},
		}},
		{"glyph below the line", &Atlas{
			Image:      good.Image,
			LineHeight: good.LineHeight,
			Fallback:   Glyph{Width: 1, YOffset: 12, Height: 4},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.atlas.Validate(); !errors.Is(err, ErrInvalidAtlas) {
				t.Errorf("Validate() error = %v, want ErrInvalidAtlas", err)
			}
		})
	}
}

func TestCustomAtlas(t *testing.T) {
	// a two glyph atlas: 'a' is a 2x2 block, the fallback a single dot
	img := image.NewGray(image.Rect(0, 0, 3, 4))
	img.Pix[img.PixOffset(0, 1)] = 0xff
	img.Pix[img.PixOffset(1, 1)] = 0xff
	img.Pix[img.PixOffset(0, 2)] = 0xff
	img.Pix[img.PixOffset(1, 2)] = 0xff
	img.Pix[img.PixOffset(2, 3)] = 0x80

	a := &Atlas{
		Image:      img,
		Glyphs:     map[rune]Glyph{'a': {AtlasX: 0, Width: 2, YOffset: 1, Height: 2}},
		Fallback:   Glyph{AtlasX: 2, Width: 1, YOffset: 3, Height: 1},
		LineHeight: 4,
		Baseline:   3,
		Spacing:    1,
	}
	if err := a.Validate(); err != nil {
		t.Fatal(err)
	}

	got, err := a.RenderImage("a?", false)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0, 0, 0, 0,
		0xff, 0xff, 0, 0,
		0xff, 0xff, 0, 0,
		0, 0, 0, 0xff,
	}
	if string(got.Pix) != string(want) {
		t.Errorf("pixels = %v, want %v", got.Pix, want)
	}
}

func TestNewAtlasFromFaceSubset(t *testing.T) {
	a := NewAtlasFromFace("subset", basicfont.Face7x13, []rune("ab"))
	if err := a.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(a.Glyphs) != 2 {
		t.Fatalf("atlas has %d glyphs, want 2", len(a.Glyphs))
	}
	// same face, so the pixels match the default atlas
	want, _ := DefaultAtlas().RenderImage("ab", false)
	got, err := a.RenderImage("ab", false)
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Pix) != string(want.Pix) {
		t.Error("subset atlas renders differently")
	}
	if a.Glyph('c') != a.Fallback {
		t.Error("rune outside the subset should fall back")
	}
}
