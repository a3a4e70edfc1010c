// Package nodeimg renders trees of styled nodes into images.
//
// # Overview
//
// A document is a tree of [node.Node] values: containers, text and
// images, styled with CSS-like properties ([style.Style]) and Tailwind-like
// utility classes (package style/tw). Render lays the tree out with flexbox, shapes
// and breaks its text, and paints it into an image. Measure runs the same
// pipeline without painting and returns the box geometry.
//
// # Quick Start
//
//	g, err := nodeimg.NewGlobalContext()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	root := node.Container(
//	    node.Text("Hello, world").WithTW("text-4xl font-bold text-white"),
//	).WithTW("flex items-center justify-center w-full h-full bg-blue-500")
//
//	img, err := nodeimg.Render(ctx, root, nodeimg.NewViewport(1200, 630), g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = nodeimg.Encode(w, img, nodeimg.PNG)
//
// # Pipeline
//
// Every call goes through the same stages:
//   - resources: image sources are collected and resolved once, before
//     layout. Pinned images and data URIs resolve locally; network URLs go
//     through a shared LRU cache and the fetcher.
//   - styles: each node's preset, utility classes and inline style are
//     merged and resolved against its parent in one top-down pass.
//   - layout: the flexbox solver positions the boxes; text and images are
//     measured on demand.
//   - paint: boxes are composited back to front into a premultiplied RGBA
//     buffer.
//
// # Global state
//
// A [GlobalContext] holds fonts, pinned images and the image cache. Create
// one and share it between renders; it is safe for concurrent use.
//
// # Logging
//
// nodeimg is silent by default. Call [SetLogger] to receive fetch
// failures and diagnostics through log/slog.
package nodeimg
