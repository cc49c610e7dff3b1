// Package geom provides the pure geometric primitives of the engine:
// circles, axis-aligned bounding boxes and polygons, together with their
// distance, intersection and containment predicates and the in-place
// transforms the drawable layer builds on.
//
// Primitives are plain values with no drawing dependencies. Every predicate
// counts boundary contact as intersection; tolerance parameters are only
// used where documented (point-on-boundary tests).
package geom
