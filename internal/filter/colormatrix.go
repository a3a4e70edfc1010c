package filter

import (
	"image"
	"math"
)

// Matrix is a 4x5 row-major color matrix over unpremultiplied components
// in [0, 1]. The fifth column is an offset.
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
type Matrix [20]float32

// Identity leaves colors unchanged.
var Identity = Matrix{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// Brightness scales color channels by amount.
func Brightness(amount float32) Matrix {
	return Matrix{
		amount, 0, 0, 0, 0,
		0, amount, 0, 0, 0,
		0, 0, amount, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast maps v to (v-0.5)*amount+0.5.
func Contrast(amount float32) Matrix {
	off := 0.5 * (1 - amount)
	return Matrix{
		amount, 0, 0, 0, off,
		0, amount, 0, 0, off,
		0, 0, amount, 0, off,
		0, 0, 0, 1, 0,
	}
}

// Saturate scales saturation; 0 is fully desaturated.
func Saturate(s float32) Matrix {
	return Matrix{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale converts toward gray by amount in [0, 1].
func Grayscale(amount float32) Matrix {
	a := 1 - clampUnit(amount)
	return Matrix{
		0.2126 + 0.7874*a, 0.7152 - 0.7152*a, 0.0722 - 0.0722*a, 0, 0,
		0.2126 - 0.2126*a, 0.7152 + 0.2848*a, 0.0722 - 0.0722*a, 0, 0,
		0.2126 - 0.2126*a, 0.7152 - 0.7152*a, 0.0722 + 0.9278*a, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Sepia tones toward sepia by amount in [0, 1].
func Sepia(amount float32) Matrix {
	a := 1 - clampUnit(amount)
	return Matrix{
		0.393 + 0.607*a, 0.769 - 0.769*a, 0.189 - 0.189*a, 0, 0,
		0.349 - 0.349*a, 0.686 + 0.314*a, 0.168 - 0.168*a, 0, 0,
		0.272 - 0.272*a, 0.534 - 0.534*a, 0.131 + 0.869*a, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotate rotates hue by deg degrees.
func HueRotate(deg float32) Matrix {
	rad := float64(deg) * math.Pi / 180
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return Matrix{
		0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928, 0, 0,
		0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283, 0, 0,
		0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Invert inverts color channels by amount in [0, 1].
func Invert(amount float32) Matrix {
	a := clampUnit(amount)
	k := 1 - 2*a
	return Matrix{
		k, 0, 0, 0, a,
		0, k, 0, 0, a,
		0, 0, k, 0, a,
		0, 0, 0, 1, 0,
	}
}

// Opacity scales alpha by amount in [0, 1].
func Opacity(amount float32) Matrix {
	a := clampUnit(amount)
	return Matrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, a, 0,
	}
}

// Transform applies m to one unpremultiplied color.
func (m *Matrix) Transform(r, g, b, a float32) (float32, float32, float32, float32) {
	return clampUnit(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]),
		clampUnit(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]),
		clampUnit(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]),
		clampUnit(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
}

// Apply transforms every pixel of the premultiplied image in place.
func (m *Matrix) Apply(img *image.RGBA) {
	b := img.Rect
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			a := float32(row[i+3]) / 255
			var r, g, bl float32
			if a > 0 {
				r = float32(row[i]) / 255 / a
				g = float32(row[i+1]) / 255 / a
				bl = float32(row[i+2]) / 255 / a
			}
			r, g, bl, a = m.Transform(r, g, bl, a)
			row[i] = clampUint8(r * a * 255)
			row[i+1] = clampUint8(g * a * 255)
			row[i+2] = clampUint8(bl * a * 255)
			row[i+3] = clampUint8(a * 255)
		}
	}
}

func clampUnit(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
