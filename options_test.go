package nodeimg

import (
	"runtime"
	"testing"
	"time"

	"github.com/gogpu/nodeimg/internal/encode"
	"github.com/gogpu/nodeimg/resource"
)

func TestGlobalOptionDefaults(t *testing.T) {
	o := defaultGlobalOptions()
	if o.cacheCapacity != resource.DefaultCacheCapacity {
		t.Errorf("cacheCapacity = %d, want %d", o.cacheCapacity, resource.DefaultCacheCapacity)
	}
	if o.fetcher == nil {
		t.Error("default fetcher is nil")
	}
	if !o.defaultFonts {
		t.Error("default fonts are off")
	}
}

func TestGlobalOptions(t *testing.T) {
	o := defaultGlobalOptions()
	for _, opt := range []GlobalOption{
		WithCacheCapacity(7),
		WithFetchTimeout(time.Second),
		WithFetchConcurrency(3),
		WithFetcher(nil),
		WithoutDefaultFont(),
	} {
		opt(&o)
	}
	if o.cacheCapacity != 7 {
		t.Errorf("cacheCapacity = %d, want 7", o.cacheCapacity)
	}
	if o.fetchTimeout != time.Second {
		t.Errorf("fetchTimeout = %v, want 1s", o.fetchTimeout)
	}
	if o.fetchConcurrency != 3 {
		t.Errorf("fetchConcurrency = %d, want 3", o.fetchConcurrency)
	}
	if o.fetcher != nil {
		t.Error("WithFetcher(nil) kept the default fetcher")
	}
	if o.defaultFonts {
		t.Error("WithoutDefaultFont() left default fonts on")
	}
}

func TestNonPositiveOptionsKeepDefaults(t *testing.T) {
	o := defaultGlobalOptions()
	WithCacheCapacity(0)(&o)
	WithFetchConcurrency(-1)(&o)
	if o.cacheCapacity != resource.DefaultCacheCapacity {
		t.Errorf("cacheCapacity = %d, want default", o.cacheCapacity)
	}
	if o.fetchConcurrency != resource.DefaultFetchConcurrency {
		t.Errorf("fetchConcurrency = %d, want default", o.fetchConcurrency)
	}

	a := defaultAnimationOptions()
	WithFrameConcurrency(0)(&a)
	if a.concurrency != runtime.GOMAXPROCS(0) {
		t.Errorf("frame concurrency = %d, want GOMAXPROCS", a.concurrency)
	}
}

func TestAnimationOptions(t *testing.T) {
	a := defaultAnimationOptions()
	WithLoopCount(4)(&a)
	WithFrameConcurrency(2)(&a)
	WithFrameOptions(WithDebugBorder())(&a)
	if a.loops != 4 {
		t.Errorf("loops = %d, want 4", a.loops)
	}
	if a.concurrency != 2 {
		t.Errorf("concurrency = %d, want 2", a.concurrency)
	}
	var ro renderOptions
	for _, opt := range a.render {
		opt(&ro)
	}
	if !ro.debug {
		t.Error("frame options did not enable the debug border")
	}
}

func TestWithQuality(t *testing.T) {
	var o encode.Options
	WithQuality(55)(&o)
	if o.Quality != 55 {
		t.Errorf("Quality = %d, want 55", o.Quality)
	}
}
