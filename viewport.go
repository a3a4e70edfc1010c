package nodeimg

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/nodeimg/internal/layout"
	"github.com/gogpu/nodeimg/style"
)

// Default viewport values.
const (
	DefaultFontSize         = style.DefaultFontSize
	DefaultDevicePixelRatio = 1
)

// Viewport is the output area of a render. Width and Height are in
// device pixels; an unset dimension makes the output fit the content
// along that axis. FontSize is the root font size in CSS pixels and
// DevicePixelRatio scales every px length. Zero values select the
// defaults.
type Viewport struct {
	Width            style.Optional[uint32]
	Height           style.Optional[uint32]
	FontSize         float32
	DevicePixelRatio float32
}

// NewViewport returns a viewport with both dimensions set.
func NewViewport(width, height uint32) Viewport {
	return Viewport{Width: style.Some(width), Height: style.Some(height)}
}

// FitContent returns a viewport that sizes the output to the content.
func FitContent() Viewport {
	return Viewport{}
}

// WithDevicePixelRatio returns a copy of v with the given pixel ratio.
func (v Viewport) WithDevicePixelRatio(dpr float32) Viewport {
	v.DevicePixelRatio = dpr
	return v
}

// WithFontSize returns a copy of v with the given root font size.
func (v Viewport) WithFontSize(size float32) Viewport {
	v.FontSize = size
	return v
}

func (v Viewport) fontSize() float32 {
	if v.FontSize == 0 {
		return DefaultFontSize
	}
	return v.FontSize
}

func (v Viewport) dpr() float32 {
	if v.DevicePixelRatio == 0 {
		return DefaultDevicePixelRatio
	}
	return v.DevicePixelRatio
}

// Validate reports whether v can be rendered into.
func (v Viewport) Validate() error {
	if w, ok := v.Width.Get(); ok && w == 0 {
		return stageError(StageViewport, errors.New("width is zero"))
	}
	if h, ok := v.Height.Get(); ok && h == 0 {
		return stageError(StageViewport, errors.New("height is zero"))
	}
	if fs := v.fontSize(); !finitePositive(fs) {
		return stageError(StageViewport, fmt.Errorf("font size %v", fs))
	}
	if dpr := v.dpr(); !finitePositive(dpr) {
		return stageError(StageViewport, fmt.Errorf("device pixel ratio %v", dpr))
	}
	return nil
}

func finitePositive(f float32) bool {
	return f > 0 && !math.IsInf(float64(f), 0)
}

// metrics returns the length-resolution context of the root.
func (v Viewport) metrics() style.Metrics {
	m := style.Metrics{RootFontSize: v.fontSize(), DPR: v.dpr()}
	if w, ok := v.Width.Get(); ok {
		m.ViewportWidth = float32(w)
	}
	if h, ok := v.Height.Get(); ok {
		m.ViewportHeight = float32(h)
	}
	m.FontSize = m.RootFontSize * m.DPR
	return m
}

func (v Viewport) layout() layout.Viewport {
	m := v.metrics()
	return layout.Viewport{Width: m.ViewportWidth, Height: m.ViewportHeight}
}

// canvasSize returns the output size for a root box of size w x h: the
// viewport dimension where set, otherwise the content size rounded up.
// The result is at least 1x1.
func (v Viewport) canvasSize(w, h float32) (int, int) {
	cw := int(math.Ceil(float64(w)))
	ch := int(math.Ceil(float64(h)))
	if vw, ok := v.Width.Get(); ok {
		cw = int(vw)
	}
	if vh, ok := v.Height.Get(); ok {
		ch = int(vh)
	}
	return max(cw, 1), max(ch, 1)
}
