package nodeimg

import (
	"runtime"
	"time"

	"github.com/gogpu/nodeimg/internal/encode"
	"github.com/gogpu/nodeimg/resource"
)

// GlobalOption configures a GlobalContext during creation.
//
// Example:
//
//	g, err := nodeimg.NewGlobalContext(
//	    nodeimg.WithCacheCapacity(512),
//	    nodeimg.WithFetchTimeout(3*time.Second),
//	)
type GlobalOption func(*globalOptions)

type globalOptions struct {
	cacheCapacity    int
	fetcher          resource.Fetcher
	fetchTimeout     time.Duration
	fetchConcurrency int
	defaultFonts     bool
}

func defaultGlobalOptions() globalOptions {
	return globalOptions{
		cacheCapacity:    resource.DefaultCacheCapacity,
		fetcher:          resource.NewHTTPFetcher(0, 0),
		fetchTimeout:     resource.DefaultFetchTimeout,
		fetchConcurrency: resource.DefaultFetchConcurrency,
		defaultFonts:     true,
	}
}

// WithCacheCapacity sets how many decoded network images the context
// keeps between renders. Non-positive values keep the default.
func WithCacheCapacity(n int) GlobalOption {
	return func(o *globalOptions) {
		if n > 0 {
			o.cacheCapacity = n
		}
	}
}

// WithFetcher replaces the HTTP fetcher used for network images. A nil
// fetcher disables fetching; network URLs then resolve to nothing unless
// pinned with PutPersistentImage.
func WithFetcher(f resource.Fetcher) GlobalOption {
	return func(o *globalOptions) {
		o.fetcher = f
	}
}

// WithFetchTimeout bounds the fetch phase of every render. Fetches still
// running when it expires are abandoned and their images left out. Zero
// or negative disables the bound.
func WithFetchTimeout(d time.Duration) GlobalOption {
	return func(o *globalOptions) {
		o.fetchTimeout = d
	}
}

// WithFetchConcurrency caps the number of fetches in flight at once.
func WithFetchConcurrency(n int) GlobalOption {
	return func(o *globalOptions) {
		if n > 0 {
			o.fetchConcurrency = n
		}
	}
}

// WithoutDefaultFont skips registering the embedded Go fonts. Text renders
// only with fonts added through LoadFont.
func WithoutDefaultFont() GlobalOption {
	return func(o *globalOptions) {
		o.defaultFonts = false
	}
}

// RenderOption configures a single Render or Measure call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	debug bool
}

// WithDebugBorder outlines every border box in red and every content box
// in blue.
func WithDebugBorder() RenderOption {
	return func(o *renderOptions) {
		o.debug = true
	}
}

// AnimationOption configures RenderAnimation.
type AnimationOption func(*animationOptions)

type animationOptions struct {
	render      []RenderOption
	loops       uint16
	concurrency int
}

func defaultAnimationOptions() animationOptions {
	return animationOptions{concurrency: runtime.GOMAXPROCS(0)}
}

// WithLoopCount sets how many times the animation plays. Zero, the
// default, loops forever.
func WithLoopCount(n uint16) AnimationOption {
	return func(o *animationOptions) {
		o.loops = n
	}
}

// WithFrameConcurrency caps how many frames are rendered at once. The
// default is GOMAXPROCS.
func WithFrameConcurrency(n int) AnimationOption {
	return func(o *animationOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithFrameOptions applies render options to every frame.
func WithFrameOptions(opts ...RenderOption) AnimationOption {
	return func(o *animationOptions) {
		o.render = append(o.render, opts...)
	}
}

// EncodeOption configures Encode.
type EncodeOption func(*encode.Options)

// WithQuality sets the JPEG quality, 1 to 100. Lossless formats ignore it.
func WithQuality(q int) EncodeOption {
	return func(o *encode.Options) {
		o.Quality = q
	}
}
