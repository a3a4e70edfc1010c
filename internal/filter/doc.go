// Package filter implements the per-pixel filter pipeline used by the
// compositing engine: separable blur over RGBA and alpha buffers, and
// 4x5 color matrices for the CSS filter functions.
//
// Buffers are premultiplied; color matrices unpremultiply before
// transforming and premultiply the clamped result.
package filter
