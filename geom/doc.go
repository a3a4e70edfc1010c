// Package geom holds the small 2D geometry types shared by layout,
// compositing and the measure output: points, rectangles and affine
// transforms in float64 device pixels.
package geom
