// Package resource supplies decoded images to the renderer.
//
// A render first collects the image sources its tree references, then a
// Coordinator resolves each distinct source exactly once:
//
//   - data: URIs are decoded in place and never fetched
//   - keys pinned in the PersistentImageStore are used as-is
//   - http(s) URLs hit the shared Cache, and on a miss are fetched through
//     a Fetcher, decoded and inserted into the Cache
//
// Fetches run concurrently and hand their results back over a bounded
// channel; Resolve returns only once every expected result has arrived.
// A source that fails to resolve is simply absent from the result, so a
// broken image never aborts a render.
package resource
