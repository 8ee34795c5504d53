package linvec

// DefaultTolerance is the tolerance used by IsZero and IsOrthogonalTo
// unless WithTolerance is given.
const DefaultTolerance = 1e-10

type options struct {
	tolerance float64
	degrees   bool
}

// Option configures the behavior of a single Vector operation.
type Option func(*options)

// WithTolerance sets the tolerance for IsZero and IsOrthogonalTo.
//
// Non-positive values are ignored and DefaultTolerance is kept.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// InDegrees makes AngleWith return degrees instead of radians.
func InDegrees() Option {
	return func(o *options) {
		o.degrees = true
	}
}

func applyOptions(opts []Option) options {
	o := options{tolerance: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
