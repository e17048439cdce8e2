package imagetoascii

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestOutputSize(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		target        int
		wantW, wantH  int
	}{
		{"square half", 100, 100, 50, 50, 28},
		{"tiny square", 2, 2, 2, 2, 1},
		{"tall image", 10, 1000, 10, 10, 550},
		{"single row source", 100, 1, 10, 10, 1},
		{"upscale", 4, 4, 8, 8, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(WithWidth(tc.target))
			outW, outH := c.outputSize(tc.width, tc.height)
			if outW != tc.wantW || outH != tc.wantH {
				t.Errorf("outputSize(%d, %d) = %dx%d, want %dx%d",
					tc.width, tc.height, outW, outH, tc.wantW, tc.wantH)
			}
		})
	}

	t.Run("height never below one", func(t *testing.T) {
		c := New(WithWidth(5))
		for h := 1; h <= 20; h++ {
			if _, outH := c.outputSize(1000, h); outH < 1 {
				t.Fatalf("outputSize(1000, %d) height = %d", h, outH)
			}
		}
	})
}

func TestCellSpan(t *testing.T) {
	t.Run("covers every source pixel", func(t *testing.T) {
		const n, outN = 7, 3
		covered := make([]bool, n)
		prevEnd := 0
		for o := 0; o < outN; o++ {
			s0, s1 := cellSpan(o, outN, n)
			if s0 < 0 || s1 > n || s0 > s1 {
				t.Fatalf("cell %d: bad span [%d,%d)", o, s0, s1)
			}
			if s0 > prevEnd {
				t.Fatalf("cell %d: gap before %d", o, s0)
			}
			for i := s0; i < s1; i++ {
				covered[i] = true
			}
			prevEnd = s1
		}
		for i, ok := range covered {
			if !ok {
				t.Errorf("source index %d not covered", i)
			}
		}
	})

	t.Run("exact division has no overlap", func(t *testing.T) {
		const n, outN = 8, 4
		for o := 0; o < outN; o++ {
			s0, s1 := cellSpan(o, outN, n)
			if s0 != o*2 || s1 != o*2+2 {
				t.Errorf("cell %d: span [%d,%d), want [%d,%d)", o, s0, s1, o*2, o*2+2)
			}
		}
	})
}

func TestConvertUniformImage(t *testing.T) {
	img := uniformNRGBA(16, 16, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	out := New(WithWidth(8)).Convert(img)

	want := glyphAt(128.0/255.0, RampDefault)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) != 8 {
			t.Fatalf("line length = %d, want 8", len(line))
		}
		for _, ch := range []byte(line) {
			if ch != want {
				t.Fatalf("glyph = %q, want %q", ch, want)
			}
		}
	}
}

func TestConvertQuadrants(t *testing.T) {
	// Three white pixels and a black one in the bottom-right. At target
	// width 2 the aspect correction collapses the grid to a single row:
	// round(2 * (2/2) * 0.55) = 1.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	img.SetNRGBA(0, 0, white)
	img.SetNRGBA(1, 0, white)
	img.SetNRGBA(0, 1, white)
	img.SetNRGBA(1, 1, color.NRGBA{A: 255})

	out := New(WithWidth(2)).Convert(img)
	if out != " +\n" {
		t.Fatalf("Convert = %q, want %q", out, " +\n")
	}

	// The all-white column must map lighter than the half-black one.
	left := strings.IndexByte(RampDefault, out[0])
	right := strings.IndexByte(RampDefault, out[1])
	if left <= right {
		t.Errorf("left glyph %q not lighter than right glyph %q", out[0], out[1])
	}
}

func TestConvertInvertedAllBlack(t *testing.T) {
	img := uniformNRGBA(8, 8, color.NRGBA{A: 255})
	out := New(WithWidth(4), WithInvert(true)).Convert(img)

	for _, ch := range []byte(out) {
		if ch != ' ' && ch != '\n' {
			t.Fatalf("glyph = %q, want the lightest glyph ' '", ch)
		}
	}
}

func TestConvertGrayMatchesRGB(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			g.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	rgb := uniformNRGBA(6, 6, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	c := New(WithWidth(3))
	if got, want := c.Convert(g), c.Convert(rgb); got != want {
		t.Errorf("gray output %q differs from rgb output %q", got, want)
	}
}

func TestWidthFallback(t *testing.T) {
	for _, w := range []int{0, -5} {
		c := New(WithWidth(w))
		if c.TargetWidth != DefaultWidth {
			t.Errorf("WithWidth(%d): TargetWidth = %d, want %d", w, c.TargetWidth, DefaultWidth)
		}
	}
}

func TestCustomRampWithInvert(t *testing.T) {
	// Inversion applies to the configured ramp regardless of option order.
	img := uniformNRGBA(4, 4, color.NRGBA{A: 255})
	out := New(WithWidth(2), WithInvert(true), WithRamp("#. ")).Convert(img)
	for _, ch := range []byte(out) {
		if ch != ' ' && ch != '\n' {
			t.Fatalf("glyph = %q, want ' '", ch)
		}
	}
}

func TestConvertBytesBadData(t *testing.T) {
	if _, err := NewDefault().ConvertBytes([]byte("definitely not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRenderRowShape(t *testing.T) {
	img := uniformNRGBA(10, 10, color.NRGBA{R: 60, G: 60, B: 60, A: 255})
	var sb strings.Builder
	if err := New(WithWidth(7)).Render(&sb, img); err != nil {
		t.Fatal(err)
	}

	out := sb.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("output does not end with a newline")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 { // round(10 * (7/10) * 0.55) = 4
		t.Fatalf("got %d rows, want 4", len(lines))
	}
	for i, line := range lines {
		if len(line) != 7 {
			t.Errorf("row %d length = %d, want 7", i, len(line))
		}
	}
}
