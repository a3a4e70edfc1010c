package filter

import (
	"math"

	"github.com/gogpu/nodeimg/internal/cache"
)

// GaussianKernel returns a normalized 1D Gaussian kernel of size
// 2*ceil(3*sigma)+1. For sigma <= 0 it returns the identity kernel.
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

var kernels = cache.NewLRU[int, []float32](64)

// CachedGaussianKernel returns GaussianKernel(sigma), quantized to 0.01.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(sigma * 100)
	if k, ok := kernels.Get(key); ok {
		return k
	}
	k := GaussianKernel(float64(key) / 100)
	kernels.Add(key, k)
	return k
}

// boxRadii returns the radii of three box blurs whose composition
// approximates a Gaussian of the given sigma.
func boxRadii(sigma float64) [3]int {
	const n = 3
	wIdeal := math.Sqrt(12*sigma*sigma/n + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - n*float64(wl*wl) - 4*n*float64(wl) - 3*n) / float64(-4*wl-4)
	m := int(math.Round(mIdeal))

	var radii [3]int
	for i := range radii {
		size := wu
		if i < m {
			size = wl
		}
		radii[i] = (size - 1) / 2
	}
	return radii
}

// Extent returns how far a blur of sigma spreads beyond the source, in pixels.
func Extent(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}
