package linvec

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/linvec/internal/floats"
)

// Vector is an immutable tuple of real coordinates.
//
// The zero value is not a valid vector; obtain vectors from New, FromAny,
// MustNew or Zero. Vectors are safe for concurrent use.
type Vector struct {
	coordinates []float64
	dimension   int
}

// New creates a Vector holding a copy of coordinates.
//
// It fails with EmptyCoordinates if coordinates is empty.
func New(coordinates []float64) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, newError(EmptyCoordinates, nil)
	}
	return fromOwned(slices.Clone(coordinates)), nil
}

// MustNew is like New but panics on error.
// It simplifies literal vectors in tests and examples.
func MustNew(coordinates ...float64) Vector {
	v, err := New(coordinates)
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns the zero vector of the given dimension.
func Zero(dimension int) (Vector, error) {
	if dimension < 1 {
		return Vector{}, newError(EmptyCoordinates, nil)
	}
	return fromOwned(make([]float64, dimension)), nil
}

// FromAny creates a Vector from any slice or array of Go numeric values.
//
// It fails with NonIterable if v is not a slice or array, or if any element
// is not a number, and with EmptyCoordinates if the sequence is empty.
func FromAny(v any) (Vector, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Vector{}, newError(NonIterable, nil)
	}
	if rv.Len() == 0 {
		return Vector{}, newError(EmptyCoordinates, nil)
	}

	coords := make([]float64, rv.Len())
	for i := range coords {
		f, ok := toFloat(rv.Index(i))
		if !ok {
			return Vector{}, newError(NonIterable, nil)
		}
		coords[i] = f
	}

	return fromOwned(coords), nil
}

func toFloat(rv reflect.Value) (float64, bool) {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// fromOwned wraps coords without copying; the caller must not retain it.
func fromOwned(coords []float64) Vector {
	return Vector{coordinates: coords, dimension: len(coords)}
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return v.dimension
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []float64 {
	return slices.Clone(v.coordinates)
}

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector) At(i int) float64 {
	return v.coordinates[i]
}

// Equal reports whether v and other have exactly the same coordinates.
func (v Vector) Equal(other Vector) bool {
	return slices.Equal(v.coordinates, other.coordinates)
}

// String returns e.g. "Vector: (1, 2.5, -3)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, c := range v.coordinates {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteString(")")
	return sb.String()
}

// Plus returns the element-wise sum of v and other.
//
// Coordinates are paired by position; if the dimensions differ the result
// has the smaller dimension and the extra coordinates are ignored.
func (v Vector) Plus(other Vector) Vector {
	return fromOwned(floats.Add(v.coordinates, other.coordinates))
}

// Minus returns the element-wise difference v - other.
//
// Coordinates are paired by position as in Plus.
func (v Vector) Minus(other Vector) Vector {
	return fromOwned(floats.Sub(v.coordinates, other.coordinates))
}

// TimesScalar returns v with every coordinate multiplied by c.
func (v Vector) TimesScalar(c float64) Vector {
	return fromOwned(floats.Scale(v.coordinates, c))
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return floats.Norm(v.coordinates)
}

// Normalized returns the unit vector in the direction of v.
//
// It fails with ZeroVectorNormalization if v has magnitude exactly zero.
func (v Vector) Normalized() (Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}, newError(ZeroVectorNormalization, nil)
	}
	return v.TimesScalar(1 / mag), nil
}

// IsZero reports whether the magnitude of v is below the tolerance
// (DefaultTolerance unless WithTolerance is given).
func (v Vector) IsZero(opts ...Option) bool {
	o := applyOptions(opts)
	return v.Magnitude() < o.tolerance
}

// Dot returns the dot product of v and other.
//
// Coordinates are paired by position as in Plus.
func (v Vector) Dot(other Vector) float64 {
	return floats.Dot(v.coordinates, other.coordinates)
}

// AngleWith returns the angle between v and other in radians, or in
// degrees with InDegrees.
//
// It fails with ZeroVectorAngle if either vector is the zero vector.
func (v Vector) AngleWith(other Vector, opts ...Option) (float64, error) {
	o := applyOptions(opts)

	u1, err := v.Normalized()
	if err != nil {
		return 0, translate(err, ZeroVectorNormalization, ZeroVectorAngle)
	}
	u2, err := other.Normalized()
	if err != nil {
		return 0, translate(err, ZeroVectorNormalization, ZeroVectorAngle)
	}

	// Rounding can push the dot product of unit vectors just outside [-1, 1].
	cos := max(-1, min(1, u1.Dot(u2)))
	angle := math.Acos(cos)

	if o.degrees {
		return angle * 180 / math.Pi, nil
	}
	return angle, nil
}

// IsOrthogonalTo reports whether |v · other| is below the tolerance
// (DefaultTolerance unless WithTolerance is given).
func (v Vector) IsOrthogonalTo(other Vector, opts ...Option) bool {
	o := applyOptions(opts)
	return math.Abs(v.Dot(other)) < o.tolerance
}

// IsParallelTo reports whether v and other are parallel.
//
// The zero vector is parallel to every vector. Otherwise the angle between
// the two must be exactly 0 or exactly π; no tolerance is applied.
func (v Vector) IsParallelTo(other Vector) bool {
	if v.IsZero() || other.IsZero() {
		return true
	}

	angle, err := v.AngleWith(other)
	if err != nil {
		// Both magnitudes are at least DefaultTolerance, so this is unreachable.
		return false
	}

	return angle == 0 || angle == math.Pi
}

// ComponentParallelTo returns the projection of v onto basis.
//
// It fails with NoUniqueParallelComponent if basis is the zero vector.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	u, err := basis.Normalized()
	if err != nil {
		return Vector{}, translate(err, ZeroVectorNormalization, NoUniqueParallelComponent)
	}
	return u.TimesScalar(v.Dot(u)), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis.
//
// It fails with NoUniqueOrthogonalComponent if basis is the zero vector.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	parallel, err := v.ComponentParallelTo(basis)
	if err != nil {
		return Vector{}, translate(err, NoUniqueParallelComponent, NoUniqueOrthogonalComponent)
	}
	return v.Minus(parallel), nil
}

// Cross returns the cross product v × other.
//
// Two-dimensional operands are embedded into three dimensions with a zero
// third coordinate. It fails with UnsupportedDimensionForCross if either
// operand has a dimension other than 2 or 3.
func (v Vector) Cross(other Vector) (Vector, error) {
	a, ok := v.embed3()
	if !ok {
		return Vector{}, newError(UnsupportedDimensionForCross, nil)
	}
	b, ok := other.embed3()
	if !ok {
		return Vector{}, newError(UnsupportedDimensionForCross, nil)
	}

	x1, y1, z1 := a[0], a[1], a[2]
	x2, y2, z2 := b[0], b[1], b[2]

	return fromOwned([]float64{
		y1*z2 - y2*z1,
		-(x1*z2 - x2*z1),
		x1*y2 - x2*y1,
	}), nil
}

func (v Vector) embed3() ([3]float64, bool) {
	switch v.dimension {
	case 2:
		return [3]float64{v.coordinates[0], v.coordinates[1], 0}, true
	case 3:
		return [3]float64{v.coordinates[0], v.coordinates[1], v.coordinates[2]}, true
	default:
		return [3]float64{}, false
	}
}

// AreaOfParallelogramWith returns the area of the parallelogram spanned by
// v and other. The dimension rules of Cross apply.
func (v Vector) AreaOfParallelogramWith(other Vector) (float64, error) {
	c, err := v.Cross(other)
	if err != nil {
		return 0, err
	}
	return c.Magnitude(), nil
}

// AreaOfTriangleWith returns the area of the triangle spanned by v and
// other. The dimension rules of Cross apply.
func (v Vector) AreaOfTriangleWith(other Vector) (float64, error) {
	area, err := v.AreaOfParallelogramWith(other)
	if err != nil {
		return 0, err
	}
	return area / 2, nil
}
