package blend

import "math"

// separableFunc is B(Cb, Cs) on unpremultiplied channel values.
type separableFunc func(cb, cs float32) float32

var separable = [...]separableFunc{
	Normal:     func(_, cs float32) float32 { return cs },
	Multiply:   multiply,
	Screen:     screen,
	Overlay:    func(cb, cs float32) float32 { return hardLight(cs, cb) },
	Darken:     func(cb, cs float32) float32 { return min(cb, cs) },
	Lighten:    func(cb, cs float32) float32 { return max(cb, cs) },
	ColorDodge: colorDodge,
	ColorBurn:  colorBurn,
	HardLight:  hardLight,
	SoftLight:  softLight,
	Difference: func(cb, cs float32) float32 { return abs32(cb - cs) },
	Exclusion:  func(cb, cs float32) float32 { return cb + cs - 2*cb*cs },
}

func multiply(cb, cs float32) float32 { return cb * cs }

func screen(cb, cs float32) float32 { return cb + cs - cb*cs }

func hardLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}

func colorDodge(cb, cs float32) float32 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return min(1, cb/(1-cs))
}

func colorBurn(cb, cs float32) float32 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	}
	return 1 - min(1, (1-cb)/cs)
}

func softLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float32
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = float32(math.Sqrt(float64(cb)))
	}
	return cb + (2*cs-1)*(d-cb)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
