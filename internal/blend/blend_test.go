package blend

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func approxRGBA(a, b RGBA) bool {
	return approx(a.R, b.R) && approx(a.G, b.G) && approx(a.B, b.B) && approx(a.A, b.A)
}

func TestCompositeOpaque(t *testing.T) {
	red := RGBA{1, 0, 0, 1}
	gray := RGBA{0.5, 0.5, 0.5, 1}

	tests := []struct {
		mode Mode
		want RGBA
	}{
		{Normal, red},
		{Multiply, RGBA{0.5, 0, 0, 1}},
		{Screen, RGBA{1, 0.5, 0.5, 1}},
		{Darken, RGBA{0.5, 0, 0, 1}},
		{Lighten, RGBA{1, 0.5, 0.5, 1}},
		{Difference, RGBA{0.5, 0.5, 0.5, 1}},
		{Exclusion, RGBA{0.5, 0.5, 0.5, 1}},
		{HardLight, RGBA{1, 0, 0, 1}},
		{Overlay, RGBA{1, 0, 0, 1}},
		{PlusLighter, RGBA{1, 0.5, 0.5, 1}},
		{PlusDarker, RGBA{0.5, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := Composite(tt.mode, red, gray)
			if !approxRGBA(got, tt.want) {
				t.Errorf("Composite(%s) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestCompositeTransparentEdges(t *testing.T) {
	src := RGBA{0.2, 0.4, 0.6, 0.8}
	clear := RGBA{}
	for m := Normal; m <= PlusDarker; m++ {
		if got := Composite(m, clear, src); got != src {
			t.Errorf("%s: transparent source changed destination: %+v", m, got)
		}
		if m == PlusDarker {
			continue
		}
		if got := Composite(m, src, clear); !approxRGBA(got, src) {
			t.Errorf("%s: onto transparent = %+v, want %+v", m, got, src)
		}
	}
}

func TestNonSeparableKeepsLuminosity(t *testing.T) {
	src := RGBA{0, 0, 1, 1}
	dst := RGBA{0.5, 0.5, 0.5, 1}

	got := Composite(Color, src, dst)
	if l := Lum(got.R, got.G, got.B); !approx(l, 0.5) {
		t.Errorf("Lum(Color result) = %v, want 0.5", l)
	}

	got = Composite(Luminosity, dst, src)
	if l := Lum(got.R, got.G, got.B); !approx(l, 0.5) {
		t.Errorf("Lum(Luminosity result) = %v, want 0.5", l)
	}
}

func TestSetSatGray(t *testing.T) {
	r, g, b := SetSat(0.4, 0.4, 0.4, 0.7)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("SetSat(gray) = %v,%v,%v, want 0,0,0", r, g, b)
	}
}

func TestSourceOverPixel(t *testing.T) {
	dst := []uint8{0, 0, 255, 255}
	SourceOverPixel(dst, 128, 0, 0, 128)
	if dst[0] != 128 || dst[2] != 127 || dst[3] != 255 {
		t.Errorf("SourceOverPixel = %v, want [128 0 127 255]", dst)
	}
}

func TestPixelCoverage(t *testing.T) {
	dst := []uint8{0, 0, 0, 0}
	Pixel(Normal, dst, 255, 255, 255, 255, 0)
	if dst[3] != 0 {
		t.Errorf("zero coverage painted alpha %d", dst[3])
	}
	Pixel(Multiply, dst, 255, 0, 0, 255, 255)
	if dst[0] != 255 || dst[3] != 255 {
		t.Errorf("Pixel(Multiply) onto transparent = %v, want source", dst)
	}
}

func TestModeString(t *testing.T) {
	if ColorDodge.String() != "color-dodge" {
		t.Errorf("ColorDodge.String() = %q", ColorDodge.String())
	}
	if Mode(200).String() != "unknown" {
		t.Errorf("Mode(200).String() = %q", Mode(200).String())
	}
}
