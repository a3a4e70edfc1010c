package resource

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Defaults for a Coordinator.
const (
	DefaultFetchTimeout     = 10 * time.Second
	DefaultFetchConcurrency = 8
)

// Coordinator resolves the image sources of one render into decoded images.
//
// Sources are resolved in this order: data: URIs are decoded inline,
// persistent keys are taken from Store, network URLs are served from Cache
// or fetched, decoded and inserted into Cache. Everything that fails is
// left out of the result; callers treat a missing entry as "no image".
type Coordinator struct {
	Store   *PersistentImageStore
	Cache   *Cache
	Fetcher Fetcher

	// Timeout bounds the whole fetch phase. Zero or negative disables it.
	Timeout time.Duration
	// Concurrency caps in-flight fetches.
	Concurrency int

	logger *slog.Logger
	flight singleflight.Group

	mu     sync.Mutex
	shared map[string]*sharedFetch
}

// sharedFetch is the context one deduplicated fetch runs under. It lives
// as long as any caller still waits for the result.
type sharedFetch struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewCoordinator returns a coordinator with default timeout and
// concurrency. A nil logger discards output.
func NewCoordinator(store *PersistentImageStore, cache *Cache, fetcher Fetcher, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if store == nil {
		store = NewPersistentImageStore()
	}
	if cache == nil {
		cache = NewCache(DefaultCacheCapacity)
	}
	return &Coordinator{
		Store:       store,
		Cache:       cache,
		Fetcher:     fetcher,
		Timeout:     DefaultFetchTimeout,
		Concurrency: DefaultFetchConcurrency,
		logger:      logger,
	}
}

type fetchResult struct {
	task FetchTask
	img  *Image
	err  error
}

// Resolve returns the decoded image for every source that could be
// resolved. It returns only after every queued fetch has either completed
// or been abandoned because ctx ended or the timeout expired.
func (c *Coordinator) Resolve(ctx context.Context, srcs []string) map[string]*Image {
	out := make(map[string]*Image, len(srcs))
	var tasks []FetchTask
	seen := make(map[string]bool, len(srcs))

	for _, src := range srcs {
		if src == "" || seen[src] {
			continue
		}
		seen[src] = true

		if img, err := c.resolveLocal(src); err == nil {
			out[src] = img
			continue
		} else if !errors.Is(err, errNeedsFetch) {
			c.logger.Warn("image source not resolved", "src", shorten(src), "err", err)
			continue
		}
		tasks = append(tasks, FetchTask{URL: src})
	}
	if len(tasks) == 0 {
		return out
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	limit := c.Concurrency
	if limit <= 0 {
		limit = DefaultFetchConcurrency
	}
	results := make(chan fetchResult, min(len(tasks), limit))
	done := make(chan struct{})

	go func() {
		defer close(done)
		var g errgroup.Group
		g.SetLimit(limit)
		for _, t := range tasks {
			g.Go(func() error {
				results <- c.fetch(ctx, t)
				return nil
			})
		}
		_ = g.Wait()
	}()

	for range tasks {
		r := <-results
		if r.err != nil {
			c.logger.Warn("image fetch failed", "url", shorten(r.task.URL), "err", r.err)
			continue
		}
		out[r.task.URL] = r.img
	}
	<-done
	return out
}

var errNeedsFetch = errors.New("resource: needs fetch")

// resolveLocal resolves src without I/O. It returns errNeedsFetch for
// network URLs that are not pinned.
func (c *Coordinator) resolveLocal(src string) (*Image, error) {
	if IsDataURI(src) {
		return DecodeDataURI(src)
	}
	if img, ok := c.Store.Get(src); ok {
		return img, nil
	}
	if IsNetworkURL(src) {
		if c.Fetcher == nil {
			return nil, ErrUnknownSource
		}
		return nil, errNeedsFetch
	}
	return nil, ErrUnknownSource
}

func (c *Coordinator) fetch(ctx context.Context, t FetchTask) fetchResult {
	if img, ok := c.Cache.Get(t); ok {
		return fetchResult{task: t, img: img}
	}

	fctx, release := c.join(ctx, t.URL)
	defer release()
	ch := c.flight.DoChan(t.URL, func() (any, error) {
		if img, ok := c.Cache.Get(t); ok {
			return img, nil
		}
		data, err := c.Fetcher.Fetch(fctx, t.URL)
		if err != nil {
			return nil, err
		}
		img, err := Decode(data)
		if err != nil {
			return nil, &DecodeError{URI: t.URL, Err: err}
		}
		c.Cache.Insert(t, img)
		return img, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return fetchResult{task: t, err: r.Err}
		}
		return fetchResult{task: t, img: r.Val.(*Image)}
	case <-ctx.Done():
		return fetchResult{task: t, err: ctx.Err()}
	}
}

// join registers a caller waiting for url and returns the context the
// shared fetch runs under. The context is detached from any single
// caller and bounded by Timeout; it is canceled once the last waiter
// calls release.
func (c *Coordinator) join(ctx context.Context, url string) (context.Context, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.shared == nil {
		c.shared = make(map[string]*sharedFetch)
	}
	f, ok := c.shared[url]
	if !ok {
		base := context.WithoutCancel(ctx)
		f = &sharedFetch{}
		if c.Timeout > 0 {
			f.ctx, f.cancel = context.WithTimeout(base, c.Timeout)
		} else {
			f.ctx, f.cancel = context.WithCancel(base)
		}
		c.shared[url] = f
	}
	f.waiters++

	return f.ctx, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		f.waiters--
		if f.waiters > 0 {
			return
		}
		f.cancel()
		delete(c.shared, url)
		// A flight still unwinding from the cancel must not be joined by
		// the next caller.
		c.flight.Forget(url)
	}
}
