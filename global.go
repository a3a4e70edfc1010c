package nodeimg

import (
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/text"
)

// FontOptions overrides what a font file says about itself.
type FontOptions = text.LoadOptions

// GlobalContext owns the state shared by many renders: the font registry,
// the persistent image store, and the cache of fetched network images.
//
// A GlobalContext is safe for concurrent use. Renders only read fonts and
// pinned images; LoadFont and PutPersistentImage may run concurrently with
// renders, which see the change from their next fetch phase on.
type GlobalContext struct {
	fonts       *text.Registry
	store       *resource.PersistentImageStore
	cache       *resource.Cache
	coordinator *resource.Coordinator
}

// NewGlobalContext returns a context with the embedded Go fonts registered
// under the "Go" and "monospace" families.
func NewGlobalContext(opts ...GlobalOption) (*GlobalContext, error) {
	o := defaultGlobalOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := componentLogger()
	g := &GlobalContext{
		fonts: text.NewRegistry(logger),
		store: resource.NewPersistentImageStore(),
		cache: resource.NewCache(o.cacheCapacity),
	}
	g.coordinator = resource.NewCoordinator(g.store, g.cache, o.fetcher, logger)
	g.coordinator.Timeout = o.fetchTimeout
	g.coordinator.Concurrency = o.fetchConcurrency

	if o.defaultFonts {
		if err := g.fonts.RegisterDefaults(); err != nil {
			return nil, stageError(StageFont, err)
		}
	}
	return g, nil
}

// LoadFont registers the faces in data, which may be TTF, OTF, a TTC
// collection or WOFF. It returns the number of faces added. A failure
// leaves previously loaded fonts untouched.
func (g *GlobalContext) LoadFont(data []byte, opts FontOptions) (int, error) {
	n, err := g.fonts.Load(data, opts)
	if err != nil {
		return 0, stageError(StageFont, err)
	}
	return n, nil
}

// Families returns the registered font families.
func (g *GlobalContext) Families() []string {
	return g.fonts.Families()
}

// PutPersistentImage decodes data and pins it under key. Image nodes and
// background layers that name key use it without fetching. A later put
// under the same key replaces the image.
func (g *GlobalContext) PutPersistentImage(key string, data []byte) error {
	if _, err := g.store.Put(key, data); err != nil {
		return stageError(StageImage, err)
	}
	return nil
}

// DeletePersistentImage unpins key and reports whether it was present.
func (g *GlobalContext) DeletePersistentImage(key string) bool {
	return g.store.Delete(key)
}

// ClearPersistentImages unpins every image.
func (g *GlobalContext) ClearPersistentImages() {
	g.store.Clear()
}

// PersistentImageKeys returns the pinned keys in sorted order.
func (g *GlobalContext) PersistentImageKeys() []string {
	return g.store.Keys()
}

// CacheStats reports the hit and miss counts of the network image cache.
func (g *GlobalContext) CacheStats() resource.CacheStats {
	return g.cache.Stats()
}

// PurgeCache drops every cached network image.
func (g *GlobalContext) PurgeCache() {
	g.cache.Purge()
}
