package blend

// div255 divides by 255 exactly for all inputs up to 255*255.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 returns a*b/255 rounded.
func MulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint32(a) * uint32(b)))
}

// SourceOverPixel composites a premultiplied 8-bit source pixel onto dst[0:4].
func SourceOverPixel(dst []uint8, r, g, b, a uint8) {
	if a == 0 {
		return
	}
	if a == 255 {
		dst[0], dst[1], dst[2], dst[3] = r, g, b, 255
		return
	}
	inv := uint32(255 - a)
	dst[0] = r + uint8(div255(uint32(dst[0])*inv))
	dst[1] = g + uint8(div255(uint32(dst[1])*inv))
	dst[2] = b + uint8(div255(uint32(dst[2])*inv))
	dst[3] = a + uint8(div255(uint32(dst[3])*inv))
}

// Pixel composites a premultiplied 8-bit source pixel onto dst[0:4] with mode m,
// scaling the source by coverage (0..255) first.
func Pixel(m Mode, dst []uint8, r, g, b, a, coverage uint8) {
	if coverage != 255 {
		r, g, b, a = MulDiv255(r, coverage), MulDiv255(g, coverage), MulDiv255(b, coverage), MulDiv255(a, coverage)
	}
	if m == Normal {
		SourceOverPixel(dst, r, g, b, a)
		return
	}
	out := Composite(m, FromBytes(r, g, b, a), FromBytes(dst[0], dst[1], dst[2], dst[3]))
	dst[0], dst[1], dst[2], dst[3] = out.Bytes()
}
