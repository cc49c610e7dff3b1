// Package planar provides the shape and drawable core of a small 2D engine.
//
// # Overview
//
// planar defines value-like geometric primitives (circle, axis-aligned box,
// polygon), a uniform transform contract shared by every drawable, canvas
// dispatch that routes each shape to a renderer-specific draw routine, and
// an immutable, identity-interned color type with color-space conversions.
// Rasterization itself is out of scope: a canvas is any external object
// implementing the per-primitive draw interfaces in the draw package.
//
// # Quick Start
//
//	import (
//	    "github.com/planar2d/planar"
//	    "github.com/planar2d/planar/draw"
//	)
//
//	// A red circle of radius 50 centered at (100, 100).
//	c := draw.NewCircle(50, planar.V2(100, 100), draw.WithColor(planar.Red))
//
//	// Derived transforms never touch the receiver.
//	moved := c.Moved(planar.V2(10, 0))
//
//	// Dispatch to any canvas implementing draw.CircleCanvas.
//	err := moved.Draw(myCanvas)
//
// # Architecture
//
// The module is organized into:
//   - planar: shared value types (Vec2, Matrix, Color) and the color registry
//   - geom: pure geometry and predicates, no drawing dependencies
//   - draw: styled drawables, the transform contract, canvas dispatch
//   - texture: decoded texture resources behind a bounded LRU cache
//   - cache: the generic LRU backing the texture cache
//
// # Coordinate System
//
// Positions are float64 pairs with X increasing right and Y increasing up,
// matching the physics convention. Angles are in radians and increase
// counter-clockwise.
//
// # Concurrency
//
// Shapes assume exclusive ownership during in-place mutation. The two
// process-wide registries (color canonicalization table, texture cache)
// are internally locked and safe for concurrent lookup-or-insert.
package planar
