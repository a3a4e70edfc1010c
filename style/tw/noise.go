package tw

import (
	"slices"

	"github.com/gogpu/nodeimg/style"
)

// registerNoise adds "noise-<seed>" and "noise-opacity-<percent>". Both
// edit the same noise layer, appending one to the background images when
// none is present yet.
func registerNoise() {
	Register("noise", utility(func(v Value) (int32, bool) {
		n, ok := number(v)
		return int32(n), ok && n == float32(int32(n))
	}, func(s *style.Style, seed int32) {
		editNoise(s, func(n *style.Noise) { n.Seed = seed })
	}))
	Register("noise-opacity", utility(func(v Value) (float32, bool) {
		f, ok := percentage(v)
		return f, ok && f >= 0 && f <= 1
	}, func(s *style.Style, opacity float32) {
		editNoise(s, func(n *style.Noise) { n.Opacity = opacity })
	}))
	RegisterFixed("noise", func(s *style.Style) { editNoise(s, func(*style.Noise) {}) })
}

func editNoise(s *style.Style, edit func(n *style.Noise)) {
	imgs := slices.Clone(s.BackgroundImage.Or(nil))
	for i, img := range imgs {
		if n, ok := img.(style.Noise); ok {
			edit(&n)
			imgs[i] = n
			s.BackgroundImage = style.Some(imgs)
			return
		}
	}
	n := style.Noise{Opacity: style.DefaultNoiseOpacity}
	edit(&n)
	s.BackgroundImage = style.Some(append(imgs, style.BackgroundImage(n)))
}
