// Package linvec provides an immutable N-dimensional vector value type for
// teaching and demonstrating linear-algebra primitives.
//
// # Quick Start
//
//	v, err := linvec.New([]float64{3.039, 1.879})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b := linvec.MustNew(0.825, 2.036)
//
//	par, _ := v.ComponentParallelTo(b)   // (1.083, 2.672)
//	orth, _ := v.ComponentOrthogonalTo(b) // (1.956, -0.793)
//	deg, _ := v.AngleWith(b, linvec.InDegrees())
//
// # Operations
//
//   - Linear: Plus, Minus, TimesScalar
//   - Metric: Magnitude, Normalized, IsZero
//   - Angular: Dot, AngleWith, IsOrthogonalTo, IsParallelTo
//   - Projection: ComponentParallelTo, ComponentOrthogonalTo
//   - Three dimensions: Cross, AreaOfParallelogramWith, AreaOfTriangleWith
//
// Every operation returns a new Vector; no Vector is ever modified.
//
// # Dimensions
//
// Plus, Minus and Dot pair coordinates by position and silently truncate to
// the shorter operand. They never report a dimension mismatch. Cross accepts
// only two- and three-dimensional operands.
//
// # Errors
//
// Failures are *Error values carrying an ErrorKind. Match them with
// errors.Is against the kind sentinels (ErrZeroVectorNormalization, ...) or
// the category sentinels ErrInvalidArgument and ErrDomain, or use KindOf.
//
//	if _, err := v.AngleWith(zero); errors.Is(err, linvec.ErrZeroVectorAngle) {
//	    // ...
//	}
package linvec
