// Package draw provides the styled drawable layer over the geom
// primitives: every drawable couples one exclusively-owned primitive with
// fill color, line color and line width, implements the uniform transform
// contract (in-place Move/Rotate/Rescale/Transform plus the derived
// Moved/Rotated/Rescaled/Transformed family that returns independent
// copies), and dispatches itself to a canvas.
//
// A canvas is any external value implementing the per-primitive draw
// interfaces (CircleCanvas, AABBCanvas, PolyCanvas, ImageCanvas). Draw
// passes the drawable itself so the canvas reads geometry and style
// through the public accessors; rasterization never happens here.
package draw
